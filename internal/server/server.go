// Package server exposes a Catalog as a read-only JSON API for the
// documentation site's rendering layer.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/krateoplatformops/oasdocs/internal/catalog"
	"github.com/krateoplatformops/oasdocs/internal/nav"
	"github.com/krateoplatformops/provider-runtime/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

// Server serves one immutable catalog.
type Server struct {
	catalog *catalog.Catalog
	nav     nav.Builder
	log     logging.Logger
	metrics *Metrics
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithMetrics enables request and catalog metrics and the /metrics route.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithRoutePrefix sets the prefix of the page hrefs placed in responses.
func WithRoutePrefix(prefix string) Option {
	return func(s *Server) {
		s.nav = nav.NewBuilder(prefix)
	}
}

func New(c *catalog.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: c,
		nav:     nav.NewBuilder("/apis"),
		log:     logging.NewNopLogger(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics != nil {
		s.metrics.ObserveCatalog(c)
	}
	return s
}

// Handler returns the routed handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	s.handle(mux, "GET /healthz", s.handleHealthz)

	s.handle(mux, "GET /api/documents", s.handleDocuments)
	s.handle(mux, "GET /api/documents/{key}", s.handleDocument)
	s.handle(mux, "GET /api/documents/{key}/operations", s.handleOperations)
	s.handle(mux, "GET /api/documents/{key}/operations/{slug}", s.handleOperation)
	s.handle(mux, "GET /api/documents/{key}/guides", s.handleGuides)
	s.handle(mux, "GET /api/documents/{key}/guides/{slug}", s.handleGuide)

	s.handle(mux, "GET /api/instructions", s.handleInstructionGroups)
	s.handle(mux, "GET /api/instructions/{group}", s.handleInstructionGroup)
	s.handle(mux, "GET /api/instructions/{group}/{slug}", s.handleInstruction)

	s.handle(mux, "GET /api/routes", s.handleRoutes)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	return mux
}

func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, s.instrument(pattern, h))
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Listening", "addr", addr, "documents", len(s.catalog.Keys()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down", "addr", addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
