package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getimpose/impose/pkg/engine"
	"github.com/getimpose/impose/pkg/logging"
)

// API exposes imposter management over HTTP.
type API struct {
	engine     *engine.Engine
	log        *slog.Logger
	port       int
	httpServer *http.Server
}

// Option is a functional option for configuring the API.
type Option func(*API)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an API bound to the engine, listening on port when
// started.
func New(e *engine.Engine, port int, opts ...Option) *API {
	a := &API{
		engine: e,
		log:    logging.Nop(),
		port:   port,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Handler returns the API's route table. Exposed separately so tests
// can drive the API without a listener.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	a.registerRoutes(mux)
	return mux
}

// Start begins serving the API. It blocks until the listener fails or
// is shut down.
func (a *API) Start() error {
	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.port),
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.log.Info("configuration API listening", "port", a.port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the API listener, honoring the context deadline.
func (a *API) Shutdown(ctx context.Context) error {
	if a.httpServer == nil {
		return nil
	}
	return a.httpServer.Shutdown(ctx)
}
