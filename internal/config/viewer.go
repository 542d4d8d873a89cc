package config

import "time"

// ViewerConfig holds settings for the list and detail views.
type ViewerConfig struct {
	PlayerImageURL string `validate:"required,url"`
	TeamImageURL   string `validate:"required,url"`
	CacheEnabled   bool
	CacheTTL       time.Duration `validate:"gt=0"`
}

func loadViewer() ViewerConfig {
	return ViewerConfig{
		PlayerImageURL: envOrDefault(envPlayerImageURL, defaultPlayerImageURL),
		TeamImageURL:   envOrDefault(envTeamImageURL, defaultTeamImageURL),
		CacheEnabled:   boolEnvOrDefault(envCacheEnabled, defaultCacheEnabled),
		CacheTTL:       durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
	}
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
