// Package pipeline provides the core draw-processing pipeline for courtline.
//
// This package implements the complete group → layout → render flow used by
// the CLI and the API server. Centralizing it keeps behavior identical
// across entry points and puts the caching policy in one place.
//
// # Architecture
//
// For an elimination draw the pipeline has three stages:
//
//  1. Group: order the flat match list into rounds
//  2. Layout: compute positions, boxes, connectors, and canvas bounds
//  3. Render: produce output artifacts (JSON, SVG)
//
// A round-robin draw takes the standings path instead: the same input is
// aggregated into a win/loss table and the fixtures are passed through for
// display.
//
// The engines themselves are pure and never cache; the Runner memoizes
// results keyed on a content hash of the draw, so a draw is recomputed
// only when its match list changes.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, d, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/danehlert/courtline/pkg/cache"
	"github.com/danehlert/courtline/pkg/draw"
	"github.com/danehlert/courtline/pkg/draw/layout"
	"github.com/danehlert/courtline/pkg/draw/standings"
	"github.com/danehlert/courtline/pkg/errors"
	"github.com/danehlert/courtline/pkg/render"
)

// DefaultCacheTTL bounds how long computed layouts stay cached. Draws for
// live events change often; a day covers a tournament session without
// letting abandoned draws pile up forever.
const DefaultCacheTTL = 24 * time.Hour

// DefaultFormat is the artifact format produced when none is requested.
const DefaultFormat = render.FormatJSON

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Engine selects the position strategy: "auto" (default), "centered",
	// or "slot".
	Engine string `json:"engine,omitempty"`

	// Layout holds the card metrics and the large-draw threshold. A wholly
	// zero config is replaced by layout.DefaultConfig; in a partial config
	// zero card dimensions and a zero threshold are filled from the
	// defaults, while zero gaps and zero top padding stand (flush cards).
	Layout layout.Config `json:"layout,omitempty"`

	// Formats lists the artifacts to render.
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes everything.
	Refresh bool `json:"refresh,omitempty"`

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration `json:"cache_ttl,omitempty"`

	// Resolvers overrides the standings identity priority (not serialized).
	// Runs with custom resolvers bypass the standings cache: resolver
	// functions cannot be keyed, and a table tallied under one identity
	// scheme must never be served for another.
	Resolvers []standings.Resolver `json:"-"`

	// Logger for progress reporting (not serialized).
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`

	// engine is the parsed engine, nil for auto.
	engine layout.Engine `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it twice has the effect of calling
// it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	engine, err := layout.ParseEngine(o.Engine)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEngine, err, "invalid engine option")
	}
	o.engine = engine

	o.Layout = mergeConfig(o.Layout)

	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if err := render.ValidateFormat(f); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid format option")
		}
	}

	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns the cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	engine := o.Engine
	if engine == "" {
		engine = layout.EngineAuto
	}
	return cache.LayoutKeyOpts{
		Engine:        engine,
		CardWidth:     o.Layout.CardWidth,
		CardHeight:    o.Layout.CardHeight,
		CardGap:       o.Layout.CardGap,
		ColumnGap:     o.Layout.ColumnGap,
		TopPadding:    o.Layout.TopPadding,
		LargeDrawSize: o.Layout.LargeDrawSize,
	}
}

// mergeConfig fills unset config fields with the defaults. A wholly zero
// config means the caller wants the defaults. In a partial config only
// the card dimensions and the threshold are filled: zero gaps and zero
// top padding are valid placements (flush cards), not omissions.
func mergeConfig(c layout.Config) layout.Config {
	if c == (layout.Config{}) {
		return layout.DefaultConfig()
	}
	def := layout.DefaultConfig()
	if c.CardWidth == 0 {
		c.CardWidth = def.CardWidth
	}
	if c.CardHeight == 0 {
		c.CardHeight = def.CardHeight
	}
	if c.LargeDrawSize == 0 {
		c.LargeDrawSize = def.LargeDrawSize
	}
	return c
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run. Exactly one of Layout and
// Standings is populated, by draw type.
type Result struct {
	// DrawHash is the content hash of the input draw.
	DrawHash string

	// Layout is the computed bracket geometry (elimination draws).
	Layout *layout.Layout

	// Standings is the aggregated table (round-robin draws), with the
	// original fixtures passed through for display.
	Standings []standings.Standing
	Fixtures  []draw.Match

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	MatchCount int
	RoundCount int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit    bool // Whether the layout came from cache
	StandingsHit bool // Whether the standings table came from cache
	RenderHit    bool // Whether all artifacts came from cache
}
