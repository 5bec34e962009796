// Package pkg holds the docgraph libraries.
//
// A layout request names documents and the directed relationships between
// them. The libraries turn it into a positioned node-link graph:
//
//	request JSON
//	     ↓
//	[pipeline] parse and validate
//	     ↓
//	[relgraph] adjacency, reference checks
//	     ↓
//	[layout] layers or grid, labels, edges
//	     ↓
//	[graph] result JSON ──→ [render/nodelink] DOT / SVG preview
//
// [cache] stores results keyed by request hash and layout options, on disk
// or in Redis. [errors] defines the coded errors every layer returns, and
// [observability] lets callers attach metrics or tracing through hooks.
//
// Quick start:
//
//	req, err := pipeline.ParseRequest(data)
//	if err != nil {
//	    return err
//	}
//	g, err := pipeline.Build(req, layout.DefaultOptions())
package pkg
