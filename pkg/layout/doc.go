// Package layout positions documents for 2D visualization.
//
// # Strategies
//
// Two strategies are selected by input shape:
//
//   - [Hierarchical]: layered left-to-right placement for documents with
//     relationships. Layers come from [AssignLayers], a breadth-first
//     topological reduction (Kahn's algorithm) that tolerates cycles.
//   - [Grid]: row-major placement on a near-square grid for documents
//     without relationships.
//
// [Edges] turns relationships into edges; animation is switched off for
// graphs above [Options.AnimationThreshold] nodes.
//
// # Cycles
//
// Documents that never reach zero in-degree (cycle members, self-loops, and
// anything only reachable through them) are collected into a single trailing
// remainder layer. Layering never fails and never drops a document.
//
// # Determinism
//
// Order within every layer is the original document order, so identical
// input always yields identical positions.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use.
package layout
