package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-viewer/internal/config"
	"github.com/preston-bernstein/nba-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit, instrumentation, cache).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the decorated provider and a func releasing its background resources.
func (f providerFactory) build(cfg config.Config) (providers.DataProvider, func(), error) {
	base, err := selectProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	var p providers.DataProvider = base
	// The local roster needs no quota.
	if base.Name() != config.ProviderFixture {
		p = providers.NewRateLimitedProvider(p, cfg.Balldontlie.RatePerMinute, f.logger)
	}
	p = providers.NewInstrumentedProvider(base.Name(), p, f.metrics, f.logger)

	if !cfg.Viewer.CacheEnabled {
		return p, func() {}, nil
	}
	cached := providers.NewCachingProvider(p, cfg.Viewer.CacheTTL)
	return cached, cached.Close, nil
}

// NewProvider builds the provider chain described by cfg. Callers must invoke the
// returned release func when done.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, func(), error) {
	return newProviderFactory(logger, recorder).build(cfg)
}
