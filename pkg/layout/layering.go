package layout

import "github.com/matzehuels/docgraph/pkg/relgraph"

// Layering is the result of AssignLayers.
type Layering struct {
	// Layers holds document occurrences per layer, each in input order.
	Layers [][]relgraph.DocumentID

	// Remainder reports whether the last layer collects documents the
	// topological reduction could not reach.
	Remainder bool

	index map[relgraph.DocumentID]int
}

// Layer returns the layer index of id, or -1 if id is not a document.
func (l Layering) Layer(id relgraph.DocumentID) int {
	if i, ok := l.index[id]; ok {
		return i
	}
	return -1
}

// AssignLayers groups the documents of g into left-to-right layers.
//
// AssignLayers uses a breadth-first variant of Kahn's algorithm:
//  1. Seed the frontier with every document of in-degree zero
//  2. The frontier becomes one layer; its members are marked assigned
//  3. Decrement the in-degree of each member's successors; successors that
//     reach zero and are unassigned form the next frontier
//  4. Repeat until the frontier is empty
//
// Documents never assigned sit on or behind a cycle and are placed in one
// extra trailing layer. Because in-degrees count repeated relationships while
// successor lists do not, the target of a repeated pair also ends up there.
//
// Within each layer documents keep their input order. A duplicated document
// id appears once per occurrence in its layer.
//
// Time complexity is O(V + E).
func AssignLayers(g *relgraph.Graph) Layering {
	ids := g.Unique()
	inDegree := make(map[relgraph.DocumentID]int, len(ids))
	layerOf := make(map[relgraph.DocumentID]int, len(ids))
	frontier := make([]relgraph.DocumentID, 0, len(ids))

	for _, id := range ids {
		degree := g.InDegree(id)
		inDegree[id] = degree
		if degree == 0 {
			frontier = append(frontier, id)
		}
	}

	depth := 0
	for len(frontier) > 0 {
		for _, id := range frontier {
			layerOf[id] = depth
		}

		var next []relgraph.DocumentID
		for _, id := range frontier {
			for _, child := range g.Children(id) {
				inDegree[child]--
				if inDegree[child] != 0 {
					continue
				}
				if _, assigned := layerOf[child]; !assigned {
					next = append(next, child)
				}
			}
		}

		frontier = next
		depth++
	}

	remainder := len(layerOf) < len(ids)
	if remainder {
		for _, id := range ids {
			if _, assigned := layerOf[id]; !assigned {
				layerOf[id] = depth
			}
		}
		depth++
	}

	layers := make([][]relgraph.DocumentID, depth)
	for _, d := range g.Documents() {
		l := layerOf[d]
		layers[l] = append(layers[l], d)
	}

	return Layering{Layers: layers, Remainder: remainder, index: layerOf}
}
