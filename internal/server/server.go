// Package server exposes the layout pipeline and draw store over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/danehlert/courtline/internal/config"
	"github.com/danehlert/courtline/pkg/buildinfo"
	"github.com/danehlert/courtline/pkg/pipeline"
	"github.com/danehlert/courtline/pkg/store"
)

// Server wires the pipeline, the draw store, and the HTTP routes.
type Server struct {
	cfg    *config.Config
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server.
func New(cfg *config.Config, st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	return &Server{cfg: cfg, store: st, runner: runner, logger: logger}
}

// Router builds the chi router with the middleware stack and all routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/standings", s.handleStandings)

		r.Route("/draws", func(r chi.Router) {
			r.Get("/", s.handleListDraws)
			r.Put("/{id}", s.handlePutDraw)
			r.Get("/{id}", s.handleGetDraw)
			r.Delete("/{id}", s.handleDeleteDraw)
			r.Get("/{id}/layout", s.handleDrawLayout)
		})
	})

	return r
}

// ListenAndServe runs the HTTP server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr, "version", buildinfo.Version)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
