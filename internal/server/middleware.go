package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/benchkit/ssrbench/pkg/observability"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-Id"

// requestID assigns a UUID to every request that doesn't already carry one,
// and echoes it on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs every request with its status and duration, and feeds
// the server observability hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, elapsed)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed,
			"request_id", rec.Header().Get(requestIDHeader))
	})
}
