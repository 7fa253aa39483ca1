// Package dsu implements a disjoint-set union (union-find) structure over
// a fixed universe of integer elements [0, n).
//
// The structure is array-backed: parent pointers are indices into a flat
// slice rather than references, so the parent relation cannot form
// reference cycles. [DSU.Find] applies full path compression (every node
// on the walked chain is re-pointed at the root) and [DSU.Union] merges by
// rank, which together make all operations amortized near-constant.
//
// Union reports whether it actually merged two sets. A false return means
// the elements were already connected - when feeding undirected edges into
// a DSU, that is exactly the signal that the edge closes a cycle, giving an
// alternative cycle detector to the DFS-based package cycle.
//
// A DSU is not safe for concurrent use; confine it to one owner or
// synchronize externally.
package dsu
