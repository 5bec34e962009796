// Package cache stores computed graphs and rendered previews.
//
// A [Cache] is a flat byte store with per-entry TTLs. Keys come from a
// [Keyer], so the key scheme can be swapped (for example by [ScopedKeyer])
// without touching the callers.
//
// Implementations:
//   - [NullCache]: stores nothing; caching disabled
//   - [FileCache]: hash-sharded JSON files, for the CLI
//   - [RedisCache]: shared cache for multi-instance API deployments
//
// Layout is a pure function of its input, so entries never go stale; TTLs
// only bound disk and memory use.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with expiring entries. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is reported
	// as hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// LayoutKeyOpts holds every option that changes a computed graph.
type LayoutKeyOpts struct {
	LayerSpacing       float64 `json:"layer_spacing"`
	NodeSpacing        float64 `json:"node_spacing"`
	GridSpacingX       float64 `json:"grid_spacing_x"`
	GridSpacingY       float64 `json:"grid_spacing_y"`
	AnimationThreshold int     `json:"animation_threshold"`
}

// ArtifactKeyOpts holds every option that changes a rendered preview.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// Keyer derives cache keys.
type Keyer interface {
	// LayoutKey returns the key of the graph computed from the request
	// whose canonical encoding hashes to requestHash.
	LayoutKey(requestHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key of a preview rendered from the graph
	// whose encoding hashes to graphHash.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(requestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", requestHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
