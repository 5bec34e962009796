package relgraph

import "slices"

// DocumentID identifies a document, usually by its filename.
type DocumentID = string

// Relationship is a directed, labelled link between two documents. Type is a
// free-form label and is never interpreted.
type Relationship struct {
	From DocumentID `json:"from"`
	To   DocumentID `json:"to"`
	Type string     `json:"type,omitempty"`
}

// IsSelfLoop reports whether the relationship points back at its source.
func (r Relationship) IsSelfLoop() bool { return r.From == r.To }

// String returns the relationship as "from -> to".
func (r Relationship) String() string { return r.From + " -> " + r.To }

// Graph is an adjacency index over a document set.
//
// In-degrees count every relationship, including repeats of the same pair,
// while successor lists hold each target once in first-seen order. A target
// reached by a repeated pair therefore keeps a residual in-degree after its
// single predecessor is removed.
//
// The zero value is an empty graph; use New to build one.
type Graph struct {
	documents []DocumentID
	unique    []DocumentID
	incoming  map[DocumentID]int
	outgoing  map[DocumentID][]DocumentID
	rels      []Relationship
}

// New indexes documents and relationships. Relationships whose source is not
// a declared document contribute to in-degrees but not to successor lists;
// callers are expected to run Validate first.
func New(documents []DocumentID, relationships []Relationship) *Graph {
	g := &Graph{
		documents: slices.Clone(documents),
		incoming:  make(map[DocumentID]int, len(documents)),
		outgoing:  make(map[DocumentID][]DocumentID, len(documents)),
		rels:      slices.Clone(relationships),
	}

	for _, d := range documents {
		if _, seen := g.incoming[d]; seen {
			continue
		}
		g.incoming[d] = 0
		g.outgoing[d] = nil
		g.unique = append(g.unique, d)
	}

	for _, r := range relationships {
		g.incoming[r.To]++
		children, ok := g.outgoing[r.From]
		if !ok || slices.Contains(children, r.To) {
			continue
		}
		g.outgoing[r.From] = append(children, r.To)
	}
	return g
}

// Documents returns every document occurrence in input order, duplicates
// included.
func (g *Graph) Documents() []DocumentID { return slices.Clone(g.documents) }

// Unique returns each distinct document once, in first-occurrence order.
func (g *Graph) Unique() []DocumentID { return slices.Clone(g.unique) }

// Relationships returns a copy of the relationships in input order.
func (g *Graph) Relationships() []Relationship { return slices.Clone(g.rels) }

// DocumentCount returns the number of document occurrences.
func (g *Graph) DocumentCount() int { return len(g.documents) }

// RelationshipCount returns the number of relationships.
func (g *Graph) RelationshipCount() int { return len(g.rels) }

// Has reports whether id is a declared document.
func (g *Graph) Has(id DocumentID) bool {
	_, ok := g.outgoing[id]
	return ok
}

// InDegree returns the number of relationships targeting id.
func (g *Graph) InDegree(id DocumentID) int { return g.incoming[id] }

// Children returns the distinct successors of id in first-seen order.
// The returned slice must not be modified.
func (g *Graph) Children(id DocumentID) []DocumentID { return g.outgoing[id] }

// Sources returns the distinct documents with no incoming relationship, in
// input order.
func (g *Graph) Sources() []DocumentID {
	var sources []DocumentID
	for _, d := range g.unique {
		if g.incoming[d] == 0 {
			sources = append(sources, d)
		}
	}
	return sources
}
