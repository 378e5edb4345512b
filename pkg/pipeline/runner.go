package pipeline

import (
	"context"
	"encoding/json"
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

// =============================================================================
// Runner - Pipeline Execution with Caching
// =============================================================================

// Runner executes the pipeline with caching support.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache backend. A nil keyer
// falls back to the default key scheme; a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the pipeline for a draw. Elimination draws go through the
// layout path, round-robin draws through the standings path.
func (r *Runner) Execute(ctx context.Context, d *draw.Draw, opts Options) (*Result, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidDraw, "nil draw")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	data, err := draw.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDraw, err, "failed to hash draw")
	}
	hash := cache.Hash(data)

	result := &Result{
		DrawHash:  hash,
		Artifacts: make(map[string][]byte),
		Stats:     Stats{MatchCount: len(d.Matches)},
	}

	if d.IsRoundRobin() {
		if err := r.executeStandings(ctx, d, hash, opts, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := r.executeLayout(ctx, d, hash, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// =============================================================================
// Layout Path
// =============================================================================

func (r *Runner) executeLayout(ctx context.Context, d *draw.Draw, hash string, opts Options, result *Result) error {
	layoutKey := r.Keyer.LayoutKey(hash, opts.LayoutKeyOpts())

	start := time.Now()
	l, hit, err := r.cachedLayout(ctx, layoutKey, d, opts)
	if err != nil {
		return err
	}
	result.Layout = l
	result.CacheInfo.LayoutHit = hit
	result.Stats.RoundCount = len(l.Rounds)
	result.Stats.LayoutTime = time.Since(start)

	if hit {
		opts.Logger.Debug("layout cache hit", "key", layoutKey)
	} else {
		opts.Logger.Debug("layout computed",
			"engine", l.Engine,
			"rounds", len(l.Rounds),
			"duration", result.Stats.LayoutTime)
	}

	start = time.Now()
	allHit := true
	for _, format := range opts.Formats {
		artifactKey := r.Keyer.ArtifactKey(layoutKey, cache.ArtifactKeyOpts{Format: format})

		out, hit, err := r.cachedArtifact(ctx, artifactKey, l, format, opts)
		if err != nil {
			return err
		}
		result.Artifacts[format] = out
		allHit = allHit && hit
	}
	result.CacheInfo.RenderHit = allHit
	result.Stats.RenderTime = time.Since(start)
	return nil
}

func (r *Runner) cachedLayout(ctx context.Context, key string, d *draw.Draw, opts Options) (*layout.Layout, bool, error) {
	if !opts.Refresh {
		data, ok, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("layout cache read failed", "error", err)
		} else if ok {
			var l layout.Layout
			if err := json.Unmarshal(data, &l); err == nil {
				return &l, true, nil
			}
			opts.Logger.Warn("discarding corrupt cached layout", "key", key)
		}
	}

	var lopts []layout.Option
	if opts.engine != nil {
		lopts = append(lopts, layout.WithEngine(opts.engine))
	}
	l := layout.Build(d, opts.Layout, lopts...)

	if data, err := json.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			opts.Logger.Warn("layout cache write failed", "error", err)
		}
	}
	return &l, false, nil
}

func (r *Runner) cachedArtifact(ctx context.Context, key string, l *layout.Layout, format string, opts Options) ([]byte, bool, error) {
	if !opts.Refresh {
		data, ok, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("artifact cache read failed", "error", err)
		} else if ok {
			return data, true, nil
		}
	}

	out, err := render.Layout(*l, format)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, out, opts.CacheTTL); err != nil {
		opts.Logger.Warn("artifact cache write failed", "error", err)
	}
	return out, false, nil
}

// =============================================================================
// Standings Path
// =============================================================================

func (r *Runner) executeStandings(ctx context.Context, d *draw.Draw, hash string, opts Options, result *Result) error {
	result.Fixtures = d.Matches

	// Custom resolvers are functions and cannot participate in the cache
	// key, so runs with an overridden identity priority skip the cache on
	// both sides. Sharing the default scheme's entry would return rows
	// tallied under different identities.
	cacheable := len(opts.Resolvers) == 0

	key := r.Keyer.StandingsKey(hash)

	if cacheable && !opts.Refresh {
		data, ok, err := r.Cache.Get(ctx, key)
		if err != nil {
			opts.Logger.Warn("standings cache read failed", "error", err)
		} else if ok {
			var rows []standings.Standing
			if err := json.Unmarshal(data, &rows); err == nil {
				result.Standings = rows
				result.CacheInfo.StandingsHit = true
				return r.renderStandings(rows, opts, result)
			}
			opts.Logger.Warn("discarding corrupt cached standings", "key", key)
		}
	}

	rows := standings.NewAggregator(opts.Resolvers...).Standings(d.Matches)
	result.Standings = rows

	if cacheable {
		if data, err := json.Marshal(rows); err == nil {
			if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
				opts.Logger.Warn("standings cache write failed", "error", err)
			}
		}
	}
	return r.renderStandings(rows, opts, result)
}

func (r *Runner) renderStandings(rows []standings.Standing, opts Options, result *Result) error {
	for _, format := range opts.Formats {
		if format != render.FormatJSON {
			opts.Logger.Debug("skipping format for round-robin draw", "format", format)
			continue
		}
		out, err := render.Standings(rows, format)
		if err != nil {
			return err
		}
		result.Artifacts[format] = out
	}
	return nil
}
