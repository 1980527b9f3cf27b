package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/nbastables/stats-api/internal/config"
	"github.com/nbastables/stats-api/internal/metrics"
)

type stubHTTPServer struct {
	mu           sync.Mutex
	listenCalled bool
	shutdown     bool
	listenErr    error
	handler      http.Handler
	release      chan struct{}
}

func newStubHTTPServer() *stubHTTPServer {
	return &stubHTTPServer{release: make(chan struct{})}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalled = true
	err := s.listenErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	<-s.release
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdown = true
	select {
	case <-s.release:
	default:
		close(s.release)
	}
	s.mu.Unlock()
	return nil
}

func (s *stubHTTPServer) Addr() string          { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func (s *stubHTTPServer) wasShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdown
}

func testConfig() config.Config {
	cfg := config.Load()
	cfg.Metrics.Enabled = false
	cfg.Injuries.ScrapeEnabled = false
	return cfg
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	srv := newStubHTTPServer()
	s := newServerWithDeps(testConfig(), nil, srv, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	// Give the server goroutine a moment to start listening.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if !srv.wasShutdown() {
		t.Fatal("expected http server shutdown")
	}
}

func TestServerFailureCancelsContext(t *testing.T) {
	srv := newStubHTTPServer()
	srv.listenErr = errors.New("bind failed")
	close(srv.release)
	s := newServerWithDeps(testConfig(), nil, srv, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after server failure")
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	rec, srv, shutdown := buildMetrics(cfg, nil)
	if rec == nil {
		t.Fatal("expected recorder even when metrics are disabled")
	}
	if srv != nil {
		t.Fatal("expected no metrics server when disabled")
	}
	if shutdown == nil {
		t.Fatal("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestBuildMetricsSetupFailure(t *testing.T) {
	orig := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("boom")
	}
	defer func() { metricsSetup = orig }()

	rec, srv, shutdown := buildMetrics(testConfig(), nil)
	if rec == nil {
		t.Fatal("expected fallback recorder on setup failure")
	}
	if srv != nil || shutdown != nil {
		t.Fatal("expected no metrics server or shutdown on setup failure")
	}
}

func TestNewWiresHandler(t *testing.T) {
	s := New(testConfig(), nil)
	if s.Handler() == nil {
		t.Fatal("expected a wired http handler")
	}
	if s.metrics == nil {
		t.Fatal("expected a recorder")
	}
	if s.refresher != nil {
		t.Fatal("expected no refresher when scraping is disabled")
	}
}

func TestNewEnablesRefresher(t *testing.T) {
	cfg := testConfig()
	cfg.Injuries.ScrapeEnabled = true
	s := New(cfg, nil)
	if s.refresher == nil {
		t.Fatal("expected refresher when scraping is enabled")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	inner := &http.Server{Addr: ":1234", Handler: http.NewServeMux()}
	srv := netHTTPServer{srv: inner}
	if srv.Addr() != ":1234" {
		t.Fatalf("unexpected addr %q", srv.Addr())
	}
	if srv.Handler() == nil {
		t.Fatal("expected handler passthrough")
	}
}
