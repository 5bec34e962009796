package layout

import (
	"strconv"

	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// Edges converts relationships into edges, in input order.
//
// Edge ids are "e-<from>-<to>-<index>", which stays unique for repeated
// pairs. Every edge is animated when nodeCount is at most
// opts.AnimationThreshold and none is otherwise.
func Edges(relationships []relgraph.Relationship, nodeCount int, opts Options) []graph.Edge {
	opts.SetDefaults()
	animated := nodeCount <= opts.AnimationThreshold

	edges := make([]graph.Edge, len(relationships))
	for i, r := range relationships {
		edges[i] = graph.Edge{
			ID:       EdgeID(r, i),
			Source:   r.From,
			Target:   r.To,
			Label:    r.Type,
			Animated: animated,
		}
	}
	return edges
}

// EdgeID returns the id of the edge built from the relationship at index.
func EdgeID(r relgraph.Relationship, index int) string {
	return "e-" + r.From + "-" + r.To + "-" + strconv.Itoa(index)
}
