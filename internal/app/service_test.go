package app

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/geoda-coffee/storefront/internal/config"
)

type fakeService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &fakeService{name: "http", startErr: errors.New("bind failed")}
	blocking := &fakeService{name: "worker", block: true}
	runner := NewRunner(failing, blocking)

	err := runner.Run(context.Background(), time.Second, nil)
	if err == nil || err.Error() != "bind failed" {
		t.Fatalf("expected start error, got %v", err)
	}
	if !failing.stopped.Load() || !blocking.stopped.Load() {
		t.Fatalf("expected every service to be stopped")
	}
}

func TestRunnerCancelReturnsNil(t *testing.T) {
	svc := &fakeService{name: "worker", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("expected nil on cancel, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("expected service to be stopped")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("expected error for empty runner")
	}
}

func TestNormalizeOptionsDefaults(t *testing.T) {
	opts := normalizeOptions(Options{})
	if opts.Mode != ModeAll {
		t.Fatalf("unexpected mode: %s", opts.Mode)
	}
	if opts.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %s", opts.ShutdownTimeout)
	}
	if opts.Logger == nil {
		t.Fatalf("expected default logger")
	}
	if len(opts.Signals) != 2 {
		t.Fatalf("expected default shutdown signals, got %v", opts.Signals)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]string{
		"":       ModeAll,
		" API ":  ModeAPI,
		"worker": ModeWorker,
		"All":    ModeAll,
	}
	for raw, want := range cases {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %q, %v; want %q", raw, got, err, want)
		}
	}
	if _, err := ParseMode("admin"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if err := Run(Options{Mode: "admin"}); err == nil {
		t.Fatalf("expected Run to reject unknown mode")
	}
}

func TestModeServiceSelection(t *testing.T) {
	if !servesHTTP(ModeAll) || !servesHTTP(ModeAPI) || servesHTTP(ModeWorker) {
		t.Fatalf("unexpected http selection")
	}
	if consumesQueue(ModeAll, false) || !consumesQueue(ModeAll, true) {
		t.Fatalf("all mode should follow queue switch")
	}
	if !consumesQueue(ModeWorker, false) || consumesQueue(ModeAPI, true) {
		t.Fatalf("unexpected worker selection")
	}
}

func TestNewHTTPServiceTimeouts(t *testing.T) {
	svc := NewHTTPService(config.ServerConfig{Host: "127.0.0.1", Port: "18080", WriteTimeoutSeconds: 5}, http.NotFoundHandler())
	if svc.server.Addr != "127.0.0.1:18080" {
		t.Fatalf("unexpected addr: %s", svc.server.Addr)
	}
	if svc.server.WriteTimeout != 5*time.Second {
		t.Fatalf("unexpected write timeout: %s", svc.server.WriteTimeout)
	}
	if svc.server.ReadTimeout != 15*time.Second || svc.server.IdleTimeout != 120*time.Second {
		t.Fatalf("expected default timeouts, got read=%s idle=%s", svc.server.ReadTimeout, svc.server.IdleTimeout)
	}
}
