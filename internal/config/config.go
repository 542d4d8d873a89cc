package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the viewer.
type Config struct {
	Port        string `validate:"required,numeric"`
	Provider    string `validate:"oneof=balldontlie fixture"`
	Balldontlie BalldontlieConfig
	Viewer      ViewerConfig
	Metrics     MetricsConfig
	Log         LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		Balldontlie: loadBalldontlie(),
		Viewer:      loadViewer(),
		Metrics:     loadMetrics(),
		Log:         loadLog(),
	}
}

// LoadDotEnv merges KEY=VALUE files into the environment without overriding
// variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

var validate = validator.New()

// Validate reports the first set of invalid fields.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %s", verrs.Error())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
