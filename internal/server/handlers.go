package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danehlert/courtline/pkg/buildinfo"
	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/errors"
	"github.com/danehlert/courtline/pkg/pipeline"
	"github.com/danehlert/courtline/pkg/render"
)

// maxDrawBody bounds request bodies. The largest sanctioned draw size is
// 128; even a doubles draw that size is well under a megabyte of JSON.
const maxDrawBody = 4 << 20

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Stateless Layout and Standings
// =============================================================================

// pipelineOptions builds pipeline options from query parameters, starting
// from the server's configured layout metrics.
func (s *Server) pipelineOptions(r *http.Request) pipeline.Options {
	q := r.URL.Query()

	opts := pipeline.Options{
		Engine:   q.Get("engine"),
		Layout:   s.cfg.Layout,
		CacheTTL: s.cfg.Cache.TTLDuration(),
		Logger:   s.logger,
	}
	if format := q.Get("format"); format != "" {
		opts.Formats = []string{format}
	}
	if refresh, err := strconv.ParseBool(q.Get("refresh")); err == nil {
		opts.Refresh = refresh
	}
	return opts
}

func (s *Server) readDraw(r *http.Request) (*draw.Draw, error) {
	d, err := draw.ReadJSON(http.MaxBytesReader(nil, r.Body, maxDrawBody))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDraw, err, "invalid draw document")
	}
	return d, nil
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	d, err := s.readDraw(r)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := s.pipelineOptions(r)
	result, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if result.Layout == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidDraw,
			"draw %s is round-robin; use /v1/standings", d.DrawID))
		return
	}
	s.writeArtifact(w, result, opts)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	d, err := s.readDraw(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if !d.IsRoundRobin() {
		writeError(w, errors.New(errors.ErrCodeInvalidDraw,
			"draw %s is not round-robin; use /v1/layout", d.DrawID))
		return
	}

	result, err := s.runner.Execute(r.Context(), d, s.pipelineOptions(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"draw_hash": result.DrawHash,
		"standings": result.Standings,
		"fixtures":  result.Fixtures,
	})
}

// writeArtifact writes the single requested artifact, defaulting to JSON.
func (s *Server) writeArtifact(w http.ResponseWriter, result *pipeline.Result, opts pipeline.Options) {
	format := pipeline.DefaultFormat
	if len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}

	data, ok := result.Artifacts[format]
	if !ok {
		writeError(w, errors.New(errors.ErrCodeInternal, "artifact missing for format %s", format))
		return
	}
	contentType := "application/json"
	if format == render.FormatSVG {
		contentType = "image/svg+xml"
	}
	writeRaw(w, http.StatusOK, contentType, data)
}

// =============================================================================
// Stored Draws
// =============================================================================

func (s *Server) handlePutDraw(w http.ResponseWriter, r *http.Request) {
	d, err := s.readDraw(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d.DrawID = chi.URLParam(r, "id")

	id, err := s.store.Put(r.Context(), d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"draw_id": id})
}

func (s *Server) handleGetDraw(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleListDraws(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"draws": summaries})
}

func (s *Server) handleDeleteDraw(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDrawLayout computes (or serves the cached) layout for a stored
// draw. For round-robin draws it returns the standings instead.
func (s *Server) handleDrawLayout(w http.ResponseWriter, r *http.Request) {
	d, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	opts := s.pipelineOptions(r)
	result, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	if result.Layout == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"draw_hash": result.DrawHash,
			"standings": result.Standings,
			"fixtures":  result.Fixtures,
		})
		return
	}
	s.writeArtifact(w, result, opts)
}
