package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/krateoplatformops/oasdocs/internal/tools/fingerprint"
)

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// instrument records metrics and a debug log line for every request. The
// route label is the mux pattern, never the raw path, to keep label
// cardinality bounded.
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		if s.metrics != nil {
			s.metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			s.metrics.RequestDurationSeconds.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
		}

		s.log.Debug("Served request",
			"method", r.Method, "path", r.URL.Path, "route", route,
			"status", rec.status, "duration", elapsed.String())
	})
}

// notModified sets the catalog ETag on w and reports whether the client
// already holds the current content, in which case 304 has been written.
func (s *Server) notModified(w http.ResponseWriter, r *http.Request) bool {
	etag := s.catalog.ETag()
	w.Header().Set("ETag", etag)

	if !fingerprint.Matches(r.Header.Get("If-None-Match"), etag) {
		return false
	}
	if s.metrics != nil {
		s.metrics.NotModifiedTotal.Inc()
	}
	w.WriteHeader(http.StatusNotModified)
	return true
}
