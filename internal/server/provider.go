package server

import (
	"fmt"
	"net/http"

	"github.com/preston-bernstein/nba-viewer/internal/config"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
	"github.com/preston-bernstein/nba-viewer/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-viewer/internal/providers/fixture"
)

// namedProvider is the base provider plus the name used in logs and metrics.
type namedProvider interface {
	providers.DataProvider
	Name() string
}

// httpClient lets tests point the balldontlie client at a local server.
var httpClient *http.Client

func selectProvider(cfg config.Config) (namedProvider, error) {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(), nil
	case config.ProviderBalldontlie, "":
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL:    cfg.Balldontlie.BaseURL,
			APIKey:     cfg.Balldontlie.APIKey,
			Timeout:    cfg.Balldontlie.Timeout,
			HTTPClient: httpClient,
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
