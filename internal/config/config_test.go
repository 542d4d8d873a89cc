package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Fatalf("expected default balldontlie base url %s, got %s", defaultBdlBaseURL, cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "" {
		t.Fatalf("expected empty balldontlie api key by default, got %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.Timeout != defaultBdlTimeout || cfg.Balldontlie.RatePerMinute != defaultBdlRateLimit {
		t.Fatalf("unexpected balldontlie defaults %+v", cfg.Balldontlie)
	}
	if cfg.Viewer.PlayerImageURL != defaultPlayerImageURL || cfg.Viewer.TeamImageURL != defaultTeamImageURL {
		t.Fatalf("unexpected image defaults %+v", cfg.Viewer)
	}
	if !cfg.Viewer.CacheEnabled || cfg.Viewer.CacheTTL != defaultCacheTTL {
		t.Fatalf("unexpected cache defaults %+v", cfg.Viewer)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected service name %s, got %s", defaultServiceName, cfg.Metrics.ServiceName)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envBdlBaseURL, "http://example.com/api")
	t.Setenv(envBdlAPIKey, "secret-key")
	t.Setenv(envBdlTimeout, "3s")
	t.Setenv(envBdlRateLimit, "60")
	t.Setenv(envCacheEnabled, "false")
	t.Setenv(envCacheTTL, "1m")
	t.Setenv(envPlayerImageURL, "http://img.example.com/p.png")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.Balldontlie.BaseURL != "http://example.com/api" {
		t.Fatalf("expected balldontlie base url override, got %s", cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.APIKey != "secret-key" {
		t.Fatalf("expected balldontlie api key override, got %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.Timeout != 3*time.Second || cfg.Balldontlie.RatePerMinute != 60 {
		t.Fatalf("unexpected balldontlie overrides %+v", cfg.Balldontlie)
	}
	if cfg.Viewer.CacheEnabled || cfg.Viewer.CacheTTL != time.Minute {
		t.Fatalf("unexpected cache overrides %+v", cfg.Viewer)
	}
	if cfg.Viewer.PlayerImageURL != "http://img.example.com/p.png" {
		t.Fatalf("unexpected player image url %s", cfg.Viewer.PlayerImageURL)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envBdlTimeout, "not-a-duration")

	cfg := Load()

	if cfg.Balldontlie.Timeout != defaultBdlTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Balldontlie.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envCacheTTL, "0s")

	cfg := Load()

	if cfg.Viewer.CacheTTL != defaultCacheTTL {
		t.Fatalf("expected default cache ttl on non-positive value, got %s", cfg.Viewer.CacheTTL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"provider":  func(c *Config) { c.Provider = "espn" },
		"port":      func(c *Config) { c.Port = "abc" },
		"base url":  func(c *Config) { c.Balldontlie.BaseURL = "not a url" },
		"image url": func(c *Config) { c.Viewer.TeamImageURL = "" },
		"log level": func(c *Config) { c.Log.Level = "loud" },
		"rate":      func(c *Config) { c.Balldontlie.RatePerMinute = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Load()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", name)
			}
		})
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "PORT=7000\nBALLDONTLIE_API_KEY=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envPort, "6000")
	t.Setenv(envBdlAPIKey, "")
	os.Unsetenv(envBdlAPIKey)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := Load()
	if cfg.Port != "6000" {
		t.Fatalf("expected existing PORT to win, got %s", cfg.Port)
	}
	if cfg.Balldontlie.APIKey != "from-file" {
		t.Fatalf("expected api key from file, got %q", cfg.Balldontlie.APIKey)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
