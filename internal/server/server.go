// Package server implements the ssrbench HTTP server.
//
// The server exposes the three benchmark pages plus health and version
// endpoints. The showdown page is served through the render cache: its
// content is a pure function of the configured layout parameters, so a
// cache hit skips both the spiral generation and the HTML assembly.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/benchkit/ssrbench/internal/config"
	"github.com/benchkit/ssrbench/pkg/cache"
)

// shutdownTimeout bounds how long in-flight requests may run during shutdown.
const shutdownTimeout = 10 * time.Second

// Server holds the HTTP server state.
type Server struct {
	cfg    config.Config
	cache  cache.Cache
	logger *log.Logger
}

// New creates a server. A nil cache disables caching; a nil logger falls
// back to the default logger.
func New(cfg config.Config, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, cache: c, logger: logger}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHome)
	r.Get("/ssr", s.handleRows)
	r.Get("/ssr-performance-showdown", s.handleShowdown)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.NotFound(s.handleNotFound)

	return r
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails. On cancellation, in-flight requests get shutdownTimeout to
// complete.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
