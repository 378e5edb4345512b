// Package cache provides content-addressed caching for layout computation.
//
// The layout engines themselves are pure functions and never cache; this
// package is the caller-side memoization layer. Results are keyed by a
// SHA-256 hash of the draw's match list plus the options that influence the
// output, so a changed draw or a changed card metric never serves a stale
// layout.
//
// # Backends
//
//   - FileCache: directory-backed, used by the CLI
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching (tests, --refresh)
//
// # Keys
//
// A Keyer derives cache keys from content hashes and option structs:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(drawHash, cache.LayoutKeyOpts{Engine: "centered"})
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the options that influence layout geometry.
// All fields participate in the cache key.
type LayoutKeyOpts struct {
	Engine        string  `json:"engine"`
	CardWidth     float64 `json:"card_width"`
	CardHeight    float64 `json:"card_height"`
	CardGap       float64 `json:"card_gap"`
	ColumnGap     float64 `json:"column_gap"`
	TopPadding    float64 `json:"top_padding"`
	LargeDrawSize int     `json:"large_draw_size"`
}

// ArtifactKeyOpts are the options that influence rendered artifacts.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer derives cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey returns the key for a computed layout, derived from the
	// draw content hash and the layout options.
	LayoutKey(drawHash string, opts LayoutKeyOpts) string

	// StandingsKey returns the key for a round-robin standings table.
	StandingsKey(drawHash string) string

	// ArtifactKey returns the key for a rendered artifact, derived from
	// the layout hash and the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key derivation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key of the form "layout:<sha256>".
func (k *DefaultKeyer) LayoutKey(drawHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", drawHash, opts)
}

// StandingsKey generates a key of the form "standings:<sha256>".
func (k *DefaultKeyer) StandingsKey(drawHash string) string {
	return hashKey("standings", drawHash)
}

// ArtifactKey generates a key of the form "artifact:<sha256>".
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
