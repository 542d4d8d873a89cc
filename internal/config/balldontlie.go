package config

import "time"

const (
	envBdlBaseURL   = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey    = "BALLDONTLIE_API_KEY"
	envBdlTimeout   = "BALLDONTLIE_TIMEOUT"
	envBdlRateLimit = "BALLDONTLIE_RATE_PER_MINUTE"

	defaultBdlBaseURL   = "https://api.balldontlie.io/v1"
	defaultBdlTimeout   = 10 * time.Second
	defaultBdlRateLimit = 30
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL       string `validate:"required,url"`
	APIKey        string
	Timeout       time.Duration `validate:"gt=0"`
	RatePerMinute int           `validate:"gt=0"`
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:       envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:        envOrDefault(envBdlAPIKey, ""),
		Timeout:       durationEnvOrDefault(envBdlTimeout, defaultBdlTimeout),
		RatePerMinute: intEnvOrDefault(envBdlRateLimit, defaultBdlRateLimit),
	}
}
