package layout

import (
	"math"

	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// Grid places documents row-major on a grid of ceil(sqrt(n)) columns, in
// input order. It is the fallback when there are no relationships.
func Grid(documents []relgraph.DocumentID, opts Options) []graph.Node {
	opts.SetDefaults()
	nodes := make([]graph.Node, 0, len(documents))
	if len(documents) == 0 {
		return nodes
	}

	columns := GridColumns(len(documents))
	for i, id := range documents {
		x := float64(i%columns) * opts.GridSpacingX
		y := float64(i/columns) * opts.GridSpacingY
		nodes = append(nodes, newNode(id, x, y))
	}
	return nodes
}

// GridColumns returns the column count Grid uses for n documents.
func GridColumns(n int) int {
	return int(math.Ceil(math.Sqrt(float64(n))))
}
