// Package toposort produces linear orderings of directed acyclic graphs
// using Kahn's algorithm.
//
// [Sort] returns a total order in which every edge u→v has u before v, or
// [ErrCycle] when no such order exists - never a truncated partial order.
// Ties between simultaneously ready nodes are broken deterministically:
// the queue is seeded with indegree-0 nodes in ascending id order and
// drained FIFO, so equal inputs always produce equal outputs.
//
// [Layers] runs the same traversal but groups nodes into rows by
// longest-path depth: every node lands one row below its deepest
// predecessor, so sources occupy row 0 and each row only depends on the
// rows above it.
//
// Both reject undirected graphs with [ErrUndirected].
package toposort
