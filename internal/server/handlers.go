package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/benchkit/ssrbench/pkg/buildinfo"
	"github.com/benchkit/ssrbench/pkg/cache"
	"github.com/benchkit/ssrbench/pkg/errors"
	"github.com/benchkit/ssrbench/pkg/observability"
	"github.com/benchkit/ssrbench/pkg/page"
	"github.com/benchkit/ssrbench/pkg/spiral"
)

// maxRows caps the ?rows= override on the stress page.
const maxRows = 10000

// handleHome serves the counter home page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeHTML(w, r, "/", func() []byte { return page.RenderHome(0) })
}

// handleRows serves the SSR stress page. The reference page renders 50 rows;
// ?rows= overrides that for load experiments.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	rows := page.DefaultRowCount
	if raw := r.URL.Query().Get("rows"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid rows parameter %q", raw))
			return
		}
		if err := errors.ValidateRowCount(parsed, maxRows); err != nil {
			s.writeError(w, err)
			return
		}
		rows = parsed
	}

	s.writeHTML(w, r, "/ssr", func() []byte { return page.RenderRows(rows) })
}

// handleShowdown serves the performance showdown page through the render
// cache. The page depends only on the configured layout parameters, so the
// cache key is derived from them.
func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sd := s.cfg.Showdown
	key := cache.PageKey("/ssr-performance-showdown", sd.Width, sd.Height, sd.TileSize)

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "page")
		s.serveHTML(w, data)
		return
	} else if err != nil {
		// A broken cache backend degrades to rendering, not to an error page.
		s.logger.Warn("cache get failed", "key", key, "error", err)
	}
	observability.Cache().OnCacheMiss(ctx, "page")

	data := s.render(r, "/ssr-performance-showdown", func() []byte {
		return page.RenderShowdown(spiral.Generate(sd.Width, sd.Height, sd.TileSize))
	})

	if err := s.cache.Set(ctx, key, data, s.cfg.CacheTTL()); err != nil {
		s.logger.Warn("cache set failed", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "page", len(data))
	}

	s.serveHTML(w, data)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion reports build information.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// handleNotFound serves the fallback page for unknown routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page.RenderNotFound())
}

// render runs a page renderer with observability hooks around it.
func (s *Server) render(r *http.Request, route string, fn func() []byte) []byte {
	ctx := r.Context()
	observability.Render().OnRenderStart(ctx, route)
	start := time.Now()
	data := fn()
	observability.Render().OnRenderComplete(ctx, route, len(data), time.Since(start), nil)
	return data
}

// writeHTML renders a page and serves it.
func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, route string, fn func() []byte) {
	s.serveHTML(w, s.render(r, route, fn))
}

// serveHTML writes page bytes with the HTML content type.
func (s *Server) serveHTML(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a structured error to a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDimension, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeRunNotFound:
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
