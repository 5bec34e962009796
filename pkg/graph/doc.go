// Package graph provides the wire types of the document graph: the layout
// request and the positioned node/edge result.
//
// This package defines the canonical JSON format exchanged with callers: the
// CLI reads and writes it, the HTTP API serves it, and the cache stores it.
//
// # Request
//
// A [Request] lists document filenames and typed relationships:
//
//	{
//	  "documents": ["a.pdf", "b.pdf"],
//	  "relationships": [{"from": "a.pdf", "to": "b.pdf", "type": "refers"}]
//	}
//
// [UnmarshalRequest] is tolerant of the malformed JSON language models tend
// to produce. [RequestSchema] describes the request as JSON Schema.
//
// # Graph
//
// A [Graph] holds positioned [Node] values, [Edge] values and [Metadata]:
//
//	{
//	  "nodes": [{"id": "a.pdf", "position": {"x": 0, "y": 0},
//	             "data": {"label": "a", "filename": "a.pdf"}, "draggable": true}],
//	  "edges": [{"id": "e-a.pdf-b.pdf-0", "source": "a.pdf", "target": "b.pdf",
//	             "label": "refers", "animated": true}],
//	  "metadata": {"documentCount": 2, "relationshipCount": 1,
//	               "layoutAlgorithm": "hierarchical"}
//	}
//
// Positions are abstract layout units, not pixels.
//
// # Concurrency
//
// All functions are safe for concurrent use.
package graph
