package layout

import (
	"github.com/matzehuels/docgraph/pkg/graph"
	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// Hierarchical places documents in left-to-right layers computed by
// AssignLayers. Layer L sits at x = L * LayerSpacing; the k nodes of a layer
// are centred on y = 0 with NodeSpacing between them.
//
// Nodes are returned layer by layer, so their order generally differs from
// the input order.
func Hierarchical(g *relgraph.Graph, opts Options) []graph.Node {
	opts.SetDefaults()
	layering := AssignLayers(g)

	nodes := make([]graph.Node, 0, g.DocumentCount())
	for l, layer := range layering.Layers {
		x := float64(l) * opts.LayerSpacing
		startY := float64(1-len(layer)) * opts.NodeSpacing / 2
		for i, id := range layer {
			nodes = append(nodes, newNode(id, x, startY+float64(i)*opts.NodeSpacing))
		}
	}
	return nodes
}

func newNode(filename relgraph.DocumentID, x, y float64) graph.Node {
	return graph.Node{
		ID:       filename,
		Position: graph.Position{X: x, Y: y},
		Data: graph.NodeData{
			Label:    Label(filename),
			Filename: filename,
		},
		Draggable: true,
	}
}
