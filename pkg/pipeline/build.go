package pipeline

import (
	"github.com/matzehuels/docgraph/pkg/errors"
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/layout"
	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// Build validates req and lays it out.
//
// Requests with at least one relationship get the hierarchical layout;
// requests without any get the grid. Every document occurrence becomes a
// node and every relationship an edge, both in input order.
//
// The only failure is an undeclared reference: the returned error has code
// ErrCodeInvalidReference and wraps a *relgraph.InvalidReferenceError that
// lists every offending pair. Build performs no I/O and is safe for
// concurrent use.
func Build(req graph.Request, opts layout.Options) (*graph.Graph, error) {
	links := req.Links()
	if err := relgraph.Validate(req.Documents, links); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReference, err, "")
	}

	var (
		nodes     []graph.Node
		algorithm string
	)
	if len(req.Relationships) > 0 {
		nodes = layout.Hierarchical(relgraph.New(req.Documents, links), opts)
		algorithm = graph.AlgorithmHierarchical
	} else {
		nodes = layout.Grid(req.Documents, opts)
		algorithm = graph.AlgorithmGrid
	}

	return &graph.Graph{
		Nodes: nodes,
		Edges: layout.Edges(links, len(nodes), opts),
		Metadata: graph.Metadata{
			DocumentCount:     len(req.Documents),
			RelationshipCount: len(req.Relationships),
			LayoutAlgorithm:   algorithm,
		},
	}, nil
}
