package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/preston-bernstein/nba-viewer/internal/app/viewer"
	"github.com/preston-bernstein/nba-viewer/internal/config"
	httpserver "github.com/preston-bernstein/nba-viewer/internal/http"
	"github.com/preston-bernstein/nba-viewer/internal/http/handlers"
	"github.com/preston-bernstein/nba-viewer/internal/http/middleware"
	"github.com/preston-bernstein/nba-viewer/internal/logging"
	"github.com/preston-bernstein/nba-viewer/internal/metrics"
	"github.com/preston-bernstein/nba-viewer/internal/paging"
	"github.com/preston-bernstein/nba-viewer/internal/providers"
)

var metricsSetup = metrics.Setup

// Server runs the HTTP view of one player list session plus the metrics endpoint.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	vm            *viewer.ViewModel
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	release       func()
}

// New constructs a server with the provider chain described by cfg.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil, nil)
}

// newServerWithProvider builds the server around provider, or the configured chain when nil.
func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{Service: cfg.Metrics.ServiceName})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	release := func() {}
	if provider == nil {
		var err error
		provider, release, err = newProviderFactory(logger, recorder).build(cfg)
		if err != nil {
			if metricsShutdown != nil {
				_ = metricsShutdown(context.Background())
			}
			return nil, err
		}
	}

	vm, err := viewer.New(viewer.Config{
		Provider:       provider,
		Recorder:       recorder,
		PlayerImageURL: cfg.Viewer.PlayerImageURL,
		TeamImageURL:   cfg.Viewer.TeamImageURL,
	})
	if err != nil {
		release()
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		vm:            vm,
		httpServer:    buildHTTPServer(cfg, vm, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		release:       release,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, vm *viewer.ViewModel, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		vm:         vm,
		httpServer: httpSrv,
		release:    func() {},
	}
}

func buildHTTPServer(cfg config.Config, vm *viewer.ViewModel, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(vm, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the servers and the initial player load, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	var loads sync.WaitGroup
	loads.Go(func() { s.initialLoad(ctx) })

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
	loads.Wait()
}

func (s *Server) initialLoad(ctx context.Context) {
	err := s.vm.Start(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, paging.ErrClosed) {
		return
	}
	if err != nil {
		logging.Warn(s.logger, "initial player load failed",
			slog.String(logging.FieldCategory, providers.Category(err)),
			"error", err,
		)
		return
	}
	logging.Info(s.logger, "initial player load complete", slog.Int(logging.FieldCount, len(s.vm.Items())))
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	s.vm.Close()
	s.release()

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, name+" server starting", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
