// Package relgraph models the input of a document relation graph: an ordered
// list of document identifiers and a list of directed, typed relationships
// between them.
//
// # Overview
//
// Unlike a strict DAG, a relation graph may contain cycles, self-loops and
// repeated relationships. [Graph] keeps the original document order, which the
// layout engines use as their tie-breaker, and indexes relationships into
// in-degree counts and de-duplicated successor lists.
//
// # Validation
//
// [Validate] checks that every relationship endpoint names a declared
// document. It is all-or-nothing: the returned [InvalidReferenceError] lists
// every offending relationship in input order.
//
//	if err := relgraph.Validate(docs, rels); err != nil {
//	    var ref *relgraph.InvalidReferenceError
//	    if errors.As(err, &ref) {
//	        // ref.Relationships holds every bad pair
//	    }
//	}
//
// # Duplicates
//
// Duplicate document ids are not rejected. They share a single vertex in the
// adjacency index but each occurrence stays in [Graph.Documents], so layouts
// emit one node per occurrence.
//
// # Concurrency
//
// A [Graph] is immutable after [New] returns and safe for concurrent reads.
package relgraph
