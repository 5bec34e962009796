package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/render/nodelink"
)

// Export renders g as a node-link preview in format (dot or svg).
func Export(ctx context.Context, g *graph.Graph, format string, opts Options) ([]byte, error) {
	if err := ValidateExportFormat(format); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		return svg, nil
	}
	return nil, fmt.Errorf("unsupported export format: %s", format)
}
