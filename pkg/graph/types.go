package graph

import (
	"fmt"

	"github.com/matzehuels/docgraph/pkg/relgraph"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Layout algorithms reported in Metadata.LayoutAlgorithm.
const (
	AlgorithmHierarchical = "hierarchical"
	AlgorithmGrid         = "grid"
)

// =============================================================================
// Request - Layout Input
// =============================================================================

// Request is the input of a layout call: the declared documents and the
// relationships between them.
type Request struct {
	Documents     []relgraph.DocumentID `json:"documents" validate:"required,min=1,dive,required" jsonschema_description:"Array of document filenames (e.g. ['doc-a.pdf', 'doc-b.pdf'])"`
	Relationships []Relationship        `json:"relationships" jsonschema_description:"Array of relationship definitions between documents"`
}

// Relationship is the wire form of a directed link. Endpoints are not
// required here: an empty endpoint is an undeclared document and is
// reported with the other invalid references.
type Relationship struct {
	From string `json:"from" jsonschema_description:"Source document filename"`
	To   string `json:"to" jsonschema_description:"Target document filename"`
	Type string `json:"type" jsonschema_description:"Relationship type (free-form label, e.g. 'amends', 'revokes', 'supplements')"`
}

// String returns the relationship as "from -> to".
func (r Relationship) String() string { return r.From + " -> " + r.To }

// Links converts the request relationships for the layout engine.
func (r Request) Links() []relgraph.Relationship {
	if r.Relationships == nil {
		return nil
	}
	links := make([]relgraph.Relationship, len(r.Relationships))
	for i, rel := range r.Relationships {
		links[i] = relgraph.Relationship{From: rel.From, To: rel.To, Type: rel.Type}
	}
	return links
}

// =============================================================================
// Graph - Layout Output
// =============================================================================

// Graph is a positioned node/edge graph ready for a canvas widget.
// Field names follow the React Flow conventions the canvas expects.
type Graph struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata"`
}

// Position is a point in abstract layout units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the display payload of a node.
type NodeData struct {
	Label    string `json:"label"`
	Filename string `json:"filename"`
}

// Node is one positioned document.
type Node struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Data      NodeData `json:"data"`
	Draggable bool     `json:"draggable"`
}

// Edge is one relationship between two nodes.
type Edge struct {
	ID       string `json:"id"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Label    string `json:"label,omitempty"`
	Animated bool   `json:"animated"`
}

// Metadata summarizes the request and the layout strategy used.
type Metadata struct {
	DocumentCount     int    `json:"documentCount"`
	RelationshipCount int    `json:"relationshipCount"`
	LayoutAlgorithm   string `json:"layoutAlgorithm"`
}

// IsHierarchical reports whether the layered layout was used.
func (m Metadata) IsHierarchical() bool { return m.LayoutAlgorithm == AlgorithmHierarchical }

// IsGrid reports whether the grid fallback was used.
func (m Metadata) IsGrid() bool { return m.LayoutAlgorithm == AlgorithmGrid }

// Caption renders the metadata as a one-line summary, e.g.
// "3 documents, 1 relationship • hierarchical layout".
func (m Metadata) Caption() string {
	return fmt.Sprintf("%d %s, %d %s • %s layout",
		m.DocumentCount, plural(m.DocumentCount, "document"),
		m.RelationshipCount, plural(m.RelationshipCount, "relationship"),
		m.LayoutAlgorithm)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// NodeByID returns the first node with the given id.
func (g *Graph) NodeByID(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
