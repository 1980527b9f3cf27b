// Package server wires configuration, the upstream provider, the
// aggregation service, the injuries refresher, and the HTTP servers into a
// runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nbastables/stats-api/internal/aggregate"
	"github.com/nbastables/stats-api/internal/cache"
	"github.com/nbastables/stats-api/internal/config"
	apihttp "github.com/nbastables/stats-api/internal/http"
	"github.com/nbastables/stats-api/internal/http/handlers"
	"github.com/nbastables/stats-api/internal/injuries"
	"github.com/nbastables/stats-api/internal/logging"
	"github.com/nbastables/stats-api/internal/metrics"
	"github.com/nbastables/stats-api/internal/providers"
	"github.com/nbastables/stats-api/internal/providers/nbastats"
	"github.com/nbastables/stats-api/internal/roster"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	refresher     *injuries.Refresher
	metricsStop   func(context.Context) error
}

// New constructs a server with the default upstream wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	provider := buildProvider(cfg, logger, recorder)

	rosterStore := roster.NewStore(cfg.RosterPath)
	snapshotStore := injuries.NewFileStore(cfg.Injuries.SnapshotPath)
	svc := aggregate.New(provider, rosterStore, cache.New(), snapshotStore, logger, recorder)

	var refresher *injuries.Refresher
	if cfg.Injuries.ScrapeEnabled {
		scraper := injuries.NewScraper(cfg.Injuries.SourceURL, nil)
		refresher = injuries.NewRefresher(scraper, snapshotStore, logger, recorder, cfg.Injuries.ScrapeInterval)
	}

	handler := handlers.New(svc, rosterStore, logger)
	router := apihttp.NewRouter(handler, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    buildHTTPServer(cfg.Port, router),
		metricsServer: metricsSrv,
		refresher:     refresher,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used by tests to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, refresher *injuries.Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  refresher,
	}
}

func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.StatsProvider {
	client := nbastats.NewClient(nbastats.Config{
		LiveBaseURL:  cfg.Upstream.LiveBaseURL,
		StatsBaseURL: cfg.Upstream.StatsBaseURL,
		Proxy:        cfg.Upstream.Proxy,
		HTTPClient:   &http.Client{Timeout: cfg.Upstream.Timeout},
	})
	instrumented := providers.NewInstrumentedProvider(client, recorder)
	return providers.NewRetryingProvider(instrumented, logger, cfg.Upstream.RetryAttempts, 0)
}

func buildHTTPServer(port string, handler http.Handler) httpServer {
	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

// Run starts the servers and the injuries refresher, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startRefresher(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
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

func (s *Server) startRefresher(ctx context.Context) {
	if s.refresher == nil {
		return
	}
	if err := s.refresher.Start(ctx); err != nil && s.logger != nil {
		s.logger.Warn("injuries refresher failed to start", "error", err)
	}
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.refresher != nil {
		s.refresher.Stop()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
