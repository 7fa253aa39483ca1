// Package graph provides an immutable adjacency-list graph over a dense
// integer node id space.
//
// # Overview
//
// A [Graph] is built once from an edge list and never mutated afterwards.
// Node ids are integers in [0, n), assigned by the caller; there is no
// external key mapping. The store supports both directed and undirected
// graphs, fixed at construction: undirected edges are recorded on both
// endpoint adjacency lists, directed edges only on the source's.
//
// Neighbor order is insertion order and is deliberately preserved, since the
// algorithm packages ([traverse], [cycle], [toposort]) process neighbors in
// listed order. Duplicate edges and self-loops are accepted and kept as-is;
// how the algorithms treat them is documented in their own packages.
//
// # Basic Usage
//
//	g, err := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, false)
//	if err != nil {
//	    return err
//	}
//	ns, _ := g.Neighbors(1) // [0 2] for the undirected chain above
//
// # Concurrency
//
// A Graph is safe for concurrent readers once Build returns. It has no
// mutating methods.
package graph
