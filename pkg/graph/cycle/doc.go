// Package cycle detects cycles in directed and undirected graphs.
//
// The two variants are distinct state machines and [HasCycle] picks one
// based on the graph's directedness:
//
//   - Undirected graphs track visited/unvisited state plus the DFS parent.
//     Meeting a visited neighbor that is not the parent signals a cycle.
//     The parent edge is excused exactly once per node, so a duplicated
//     (parallel) undirected edge is itself reported as a cycle.
//   - Directed graphs use three-state coloring: unvisited, in-progress,
//     done. Only an in-progress neighbor - a back edge to a node on the
//     current path - signals a cycle. Meeting a done neighbor is a
//     forward or cross edge and is not one.
//
// The undirected rule needs only one level of excluded history because an
// undirected edge is seen from both ends; the directed rule needs the whole
// ancestry, approximated by "still in progress".
//
// Self-loops count as cycles in both variants.
//
// Both detectors run their own DFS passes over every component with
// explicit stacks rather than recursion, and neither reuses the generic
// traverse walk: they need per-node state the visitation record does not
// carry.
//
// [Find] additionally reconstructs one concrete cycle path for
// diagnostics.
package cycle
