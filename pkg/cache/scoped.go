package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// This keeps cache entries for different events or tenants separate when
// they share a backend.
//
// Example usage:
//
//	// Event-specific keys
//	eventKeyer := NewScopedKeyer(NewDefaultKeyer(), "event:2026-state:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(drawHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(drawHash, opts)
}

// StandingsKey generates a prefixed key for standings caching.
func (k *ScopedKeyer) StandingsKey(drawHash string) string {
	return k.prefix + k.inner.StandingsKey(drawHash)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
