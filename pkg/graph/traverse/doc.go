// Package traverse implements depth-first and breadth-first walks over a
// [graph.Graph].
//
// Both [DFS] and [BFS] visit exactly the nodes reachable from the start node
// and record the visitation in a [Visit]: discovery order, per-node discovery
// index, tree parent, and hop depth. Unreachable nodes keep [None] in every
// per-node slice.
//
// DFS uses an explicit heap-allocated stack of (node, neighbor-cursor)
// frames, so traversal depth is bounded by available memory rather than the
// goroutine call stack. It descends fully into the first unvisited neighbor
// before trying the next, matching recursive semantics. BFS processes nodes
// in strict FIFO order, so for unweighted graphs the recorded depth is the
// hop-count shortest path from the start and is non-decreasing in discovery
// order.
//
// Both walks mark a node visited the moment it is scheduled (pushed or
// enqueued), never when it is popped - marking late would schedule nodes
// twice through diamond shapes.
//
// A Visit is owned by the caller that requested it and is never mutated
// after the walk returns.
package traverse
