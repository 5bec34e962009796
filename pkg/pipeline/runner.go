package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/docgraph/pkg/cache"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/observability"
)

// Cache kinds reported to observability.CacheHooks.
const (
	cacheKindLayout   = "layout"
	cacheKindArtifact = "artifact"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-request state, so one Runner can serve
// concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the cache lifetime of both graphs and artifacts.
	// Zero keeps cache.TTLLayout and cache.TTLArtifact.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// selects cache.DefaultKeyer and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds the graph for req, consulting the cache first.
//
// Invalid requests are never cached. Cache failures are logged and
// otherwise ignored: the graph is always recomputable.
func (r *Runner) Execute(ctx context.Context, req graph.Request, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	start := time.Now()

	reqData, err := graph.MarshalRequest(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	result := &Result{
		RequestHash: cache.Hash(reqData),
		Stats: Stats{
			Documents:     len(req.Documents),
			Relationships: len(req.Relationships),
		},
	}
	key := r.Keyer.LayoutKey(result.RequestHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if g, ok := r.lookupGraph(ctx, key, opts.Logger); ok {
			result.Graph = g
			result.CacheHit = true
			result.Stats.Algorithm = g.Metadata.LayoutAlgorithm
			result.Stats.Duration = time.Since(start)
			opts.Logger.Debug("graph cache hit", "key", key)
			return result, nil
		}
	}

	observability.Pipeline().OnBuildStart(ctx, len(req.Documents), len(req.Relationships))
	buildStart := time.Now()
	g, err := Build(req, opts.Options)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, "", 0, time.Since(buildStart), err)
		return nil, err
	}
	observability.Pipeline().OnBuildComplete(ctx, g.Metadata.LayoutAlgorithm, len(g.Nodes), time.Since(buildStart), nil)

	result.Graph = g
	result.Stats.Algorithm = g.Metadata.LayoutAlgorithm
	result.Stats.Duration = time.Since(start)

	opts.Logger.Info("built graph",
		"documents", result.Stats.Documents,
		"relationships", result.Stats.Relationships,
		"algorithm", result.Stats.Algorithm,
		"duration", result.Stats.Duration)

	if data, err := graph.MarshalGraph(g); err == nil {
		r.store(ctx, key, cacheKindLayout, data, r.ttl(cache.TTLLayout), opts.Logger)
	}
	return result, nil
}

// ExportWithCacheInfo renders a preview of g, consulting the cache first,
// and reports whether the cache was hit.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, g *graph.Graph, format string, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := ValidateExportFormat(format); err != nil {
		return nil, false, err
	}

	graphData, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, false, fmt.Errorf("encode graph for cache key: %w", err)
	}
	key := r.Keyer.ArtifactKey(cache.Hash(graphData), cache.ArtifactKeyOpts{Format: format, Detailed: opts.Detailed})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, cacheKindArtifact)
			return data, true, nil
		} else if err != nil {
			opts.Logger.Warn("cache lookup failed", "error", err)
		}
		observability.Cache().OnCacheMiss(ctx, cacheKindArtifact)
	}

	data, err := Export(ctx, g, format, opts)
	if err != nil {
		return nil, false, err
	}
	r.store(ctx, key, cacheKindArtifact, data, r.ttl(cache.TTLArtifact), opts.Logger)
	return data, false, nil
}

// Export is ExportWithCacheInfo without the cache hit flag.
func (r *Runner) Export(ctx context.Context, g *graph.Graph, format string, opts Options) ([]byte, error) {
	data, _, err := r.ExportWithCacheInfo(ctx, g, format, opts)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) lookupGraph(ctx context.Context, key string, logger *log.Logger) (*graph.Graph, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "error", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKindLayout)
		return nil, false
	}
	g, err := graph.UnmarshalGraph(data)
	if err != nil {
		// Undecodable entries are recomputed and overwritten.
		observability.Cache().OnCacheMiss(ctx, cacheKindLayout)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKindLayout)
	return g, true
}

func (r *Runner) store(ctx context.Context, key, kind string, data []byte, ttl time.Duration, logger *log.Logger) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "kind", kind, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, kind, len(data))
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func (r *Runner) ttl(fallback time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return fallback
}
