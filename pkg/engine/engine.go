package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/getimpose/impose/pkg/imposter"
	"github.com/getimpose/impose/pkg/logging"
	"github.com/getimpose/impose/pkg/metrics"
	"github.com/getimpose/impose/pkg/registry"
)

// shutdownTimeout bounds how long a listener gets to drain in-flight
// requests when its imposter is deleted.
const shutdownTimeout = 5 * time.Second

// Engine owns the imposter registry and one listener per imposter.
//
// mu serializes create and delete operations so that the registry and
// the server map always mutate together: a delete can never observe a
// registered imposter whose listener is not yet tracked.
type Engine struct {
	log      *slog.Logger
	metrics  *metrics.Metrics
	registry *registry.Registry
	bindHost string

	mu      sync.Mutex
	servers map[int]*http.Server
}

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics sets the metrics bundle.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithBindHost sets the interface imposter listeners bind to. Empty
// means all interfaces.
func WithBindHost(host string) Option {
	return func(e *Engine) {
		e.bindHost = host
	}
}

// New creates an Engine with no imposters.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:      logging.Nop(),
		metrics:  metrics.New(),
		registry: registry.New(),
		servers:  make(map[int]*http.Server),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Metrics returns the engine's metrics bundle.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}

// CreateImposter validates the configuration, claims the port and
// starts a listener for it. The registry entry is rolled back if the
// socket cannot be bound. The whole claim-bind-track sequence runs
// under the engine lock so a concurrent delete sees all of it or none
// of it.
func (e *Engine) CreateImposter(cfg imposter.Config) (*imposter.Imposter, error) {
	im, err := imposter.New(cfg)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.registry.Add(im); err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(e.bindHost, fmt.Sprintf("%d", im.Port()))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_, _ = e.registry.Remove(im.Port())
		return nil, fmt.Errorf("bind port %d: %w", im.Port(), err)
	}

	server := &http.Server{
		Handler:           &dispatcher{engine: e, imposter: im},
		ReadHeaderTimeout: 10 * time.Second,
	}
	e.servers[im.Port()] = server

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			e.log.Error("imposter listener failed", "port", im.Port(), "error", err)
		}
	}()

	e.metrics.ImpostersActive.Inc()
	e.log.Info("imposter created",
		"port", im.Port(), "name", im.Name(), "stubs", len(im.Stubs()),
		"recording", im.Recording())

	return im, nil
}

// GetImposter returns the imposter bound to a port.
func (e *Engine) GetImposter(port int) (*imposter.Imposter, error) {
	return e.registry.Get(port)
}

// ListImposters returns all imposters ordered by port.
func (e *Engine) ListImposters() []*imposter.Imposter {
	return e.registry.List()
}

// ImposterCount returns the number of live imposters.
func (e *Engine) ImposterCount() int {
	return e.registry.Count()
}

// DeleteImposter stops the imposter's listener and releases its port.
func (e *Engine) DeleteImposter(port int) error {
	e.mu.Lock()
	_, err := e.registry.Remove(port)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	server := e.servers[port]
	delete(e.servers, port)
	e.mu.Unlock()

	if server != nil {
		e.stopServer(server, port)
	}

	e.metrics.ImpostersActive.Dec()
	e.log.Info("imposter deleted", "port", port)
	return nil
}

// DeleteAll removes every imposter and returns how many were removed.
func (e *Engine) DeleteAll() int {
	e.mu.Lock()
	removed := e.registry.RemoveAll()
	servers := e.servers
	e.servers = make(map[int]*http.Server)
	e.mu.Unlock()

	for port, server := range servers {
		e.stopServer(server, port)
	}

	e.metrics.ImpostersActive.Sub(float64(len(removed)))
	if len(removed) > 0 {
		e.log.Info("all imposters deleted", "count", len(removed))
	}
	return len(removed)
}

// Shutdown stops every listener, honoring the context deadline.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	e.registry.RemoveAll()
	servers := e.servers
	e.servers = make(map[int]*http.Server)
	e.mu.Unlock()

	var firstErr error
	for port, server := range servers {
		if err := server.Shutdown(ctx); err != nil {
			e.log.Warn("imposter shutdown", "port", port, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	e.metrics.ImpostersActive.Set(0)
	return firstErr
}

func (e *Engine) stopServer(server *http.Server, port int) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		e.log.Warn("imposter shutdown", "port", port, "error", err)
		_ = server.Close()
	}
}
