package traverse

import (
	"fmt"

	"github.com/mhertel/knotwork/pkg/graph"
)

// None marks the absence of a node id: an unreached node's Index, Parent,
// and Depth, or the Parent of the start node.
const None = -1

// Visit records one completed traversal. The per-node slices are indexed by
// node id and sized to the graph's node count.
type Visit struct {
	// Order lists node ids in discovery order. Its length is the number of
	// nodes reachable from the start.
	Order []int
	// Index is each node's position in Order, or None if unreached.
	Index []int
	// Parent is the tree parent through which each node was discovered,
	// None for the start node and unreached nodes.
	Parent []int
	// Depth is the number of tree edges from the start. For BFS this is the
	// hop-count shortest distance; for DFS it is the depth in the DFS tree.
	// None for unreached nodes.
	Depth []int
}

// Reached reports whether u was visited. Out-of-range ids report false.
func (v *Visit) Reached(u int) bool {
	return u >= 0 && u < len(v.Index) && v.Index[u] != None
}

func newVisit(n int) *Visit {
	v := &Visit{
		Order:  make([]int, 0, n),
		Index:  make([]int, n),
		Parent: make([]int, n),
		Depth:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		v.Index[i] = None
		v.Parent[i] = None
		v.Depth[i] = None
	}
	return v
}

// discover marks u visited and appends it to the discovery order.
func (v *Visit) discover(u, parent, depth int) {
	v.Index[u] = len(v.Order)
	v.Parent[u] = parent
	v.Depth[u] = depth
	v.Order = append(v.Order, u)
}

// frame is one level of the explicit DFS stack: a node and a cursor into
// its neighbor list.
type frame struct {
	node int
	next int
}

// DFS walks g depth-first from start and returns the visitation record.
// Neighbors are explored in listed order, descending fully into the first
// unvisited neighbor before trying the next. Returns graph.ErrInvalidNode
// if start is outside the graph's id space.
func DFS(g *graph.Graph, start int) (*Visit, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("start %d: %w", start, graph.ErrInvalidNode)
	}

	v := newVisit(g.NodeCount())
	v.discover(start, None, 0)

	stack := []frame{{node: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ns, _ := g.Neighbors(top.node)
		if top.next >= len(ns) {
			stack = stack[:len(stack)-1]
			continue
		}
		w := ns[top.next]
		top.next++
		if v.Index[w] == None {
			v.discover(w, top.node, v.Depth[top.node]+1)
			stack = append(stack, frame{node: w})
		}
	}
	return v, nil
}

// BFS walks g breadth-first from start and returns the visitation record.
// Nodes are processed in strict FIFO order, so Depth is non-decreasing
// along Order. Returns graph.ErrInvalidNode if start is outside the
// graph's id space.
func BFS(g *graph.Graph, start int) (*Visit, error) {
	if !g.Contains(start) {
		return nil, fmt.Errorf("start %d: %w", start, graph.ErrInvalidNode)
	}

	v := newVisit(g.NodeCount())
	v.discover(start, None, 0)

	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		ns, _ := g.Neighbors(u)
		for _, w := range ns {
			if v.Index[w] == None {
				v.discover(w, u, v.Depth[u]+1)
				queue = append(queue, w)
			}
		}
	}
	return v, nil
}
