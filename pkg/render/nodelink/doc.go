// Package nodelink renders a laid-out document graph as a static node-link
// diagram for inspection outside the browser canvas.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Positions
//
// Nodes are pinned at the positions computed by package layout (pos="x,y!")
// and rendered with the neato engine, so Graphviz only routes edges. Layout
// y grows downward and Graphviz y grows upward, so y is negated.
//
// Documents that occur more than once in the input share one DOT node.
//
// # Dependencies
//
// [github.com/goccy/go-graphviz] renders SVG in-process (Graphviz compiled
// to WebAssembly); no system Graphviz install is needed.
package nodelink
