// Package pipeline turns layout requests into positioned graphs.
//
// The CLI and the HTTP API share this package so both apply the same
// validation, caching and logging.
//
// # Stages
//
//  1. Parse: tolerant JSON decoding and request validation ([ParseRequest])
//  2. Build: reference validation and layout ([Build]); pure, no I/O
//  3. Export: optional node-link preview as DOT or SVG ([Export])
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, req, pipeline.Options{})
//	if errors.Is(err, errors.ErrCodeInvalidReference) {
//	    // report every undeclared "from -> to" pair
//	}
//	fmt.Println(result.Graph.Metadata.Caption())
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/docgraph/pkg/cache"
	"github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/layout"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ExportFormats lists the formats accepted by Export, in help-text order.
var ExportFormats = []string{FormatDOT, FormatSVG}

// ValidateExportFormat checks that format is one of ExportFormats.
func ValidateExportFormat(format string) error {
	return errors.ValidateFormat(format, ExportFormats...)
}

// Options configures a pipeline run.
type Options struct {
	layout.Options

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty"`

	// Detailed adds filenames to node-link preview labels.
	Detailed bool `json:"detailed,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills zero layout fields and installs a discard logger.
func (o *Options) SetDefaults() {
	o.Options.SetDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns the cache key options for a graph built with o.
func (o Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	lo := o.Options
	lo.SetDefaults()
	return cache.LayoutKeyOpts{
		LayerSpacing:       lo.LayerSpacing,
		NodeSpacing:        lo.NodeSpacing,
		GridSpacingX:       lo.GridSpacingX,
		GridSpacingY:       lo.GridSpacingY,
		AnimationThreshold: lo.AnimationThreshold,
	}
}

// Result is the output of Runner.Execute.
type Result struct {
	Graph *graph.Graph

	// RequestHash is the SHA-256 of the canonical request encoding.
	RequestHash string

	// CacheHit reports whether Graph came from the cache.
	CacheHit bool

	Stats Stats
}

// Stats summarizes a run.
type Stats struct {
	Documents     int
	Relationships int
	Algorithm     string
	Duration      time.Duration
}
