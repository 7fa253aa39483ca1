package cycle

import "github.com/mhertel/knotwork/pkg/graph"

// Coloring states for the directed detector. The undirected detector only
// distinguishes unvisited from visited.
const (
	unvisited = iota
	inProgress
	done
)

// HasCycle reports whether g contains at least one cycle. Every component
// is examined; detection stops at the first cycle found.
func HasCycle(g *graph.Graph) bool {
	if g.Directed() {
		return hasDirectedCycle(g)
	}
	return hasUndirectedCycle(g)
}

// Find returns the nodes of one cycle in traversal order, or nil if g is
// acyclic. Consecutive entries are joined by an edge and the last node has
// an edge back to the first. A self-loop yields a single-element slice.
func Find(g *graph.Graph) []int {
	if g.Directed() {
		return findDirectedCycle(g)
	}
	return findUndirectedCycle(g)
}

// frame is one level of the explicit DFS stacks used below.
type frame struct {
	node int
	next int

	// parentSeen records whether the reverse of the tree edge into node
	// has been excused yet. Only the undirected detector uses it.
	parentSeen bool
}

func hasDirectedCycle(g *graph.Graph) bool {
	n := g.NodeCount()
	color := make([]int, n)

	for s := 0; s < n; s++ {
		if color[s] != unvisited {
			continue
		}
		color[s] = inProgress
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ns, _ := g.Neighbors(top.node)
			if top.next >= len(ns) {
				color[top.node] = done
				stack = stack[:len(stack)-1]
				continue
			}
			w := ns[top.next]
			top.next++
			switch color[w] {
			case inProgress:
				// Back edge to a node on the current path.
				return true
			case unvisited:
				color[w] = inProgress
				stack = append(stack, frame{node: w})
			}
		}
	}
	return false
}

func hasUndirectedCycle(g *graph.Graph) bool {
	n := g.NodeCount()
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ns, _ := g.Neighbors(top.node)
			if top.next >= len(ns) {
				stack = stack[:len(stack)-1]
				continue
			}
			w := ns[top.next]
			top.next++
			if w == parent[top.node] && !top.parentSeen {
				// The reverse of the edge we arrived through; excused
				// once, so a parallel edge still registers below.
				top.parentSeen = true
				continue
			}
			if visited[w] {
				return true
			}
			visited[w] = true
			parent[w] = top.node
			stack = append(stack, frame{node: w})
		}
	}
	return false
}

func findDirectedCycle(g *graph.Graph) []int {
	n := g.NodeCount()
	color := make([]int, n)

	for s := 0; s < n; s++ {
		if color[s] != unvisited {
			continue
		}
		color[s] = inProgress
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ns, _ := g.Neighbors(top.node)
			if top.next >= len(ns) {
				color[top.node] = done
				stack = stack[:len(stack)-1]
				continue
			}
			w := ns[top.next]
			top.next++
			switch color[w] {
			case inProgress:
				// The stack holds the current path; the cycle is the
				// suffix starting at w.
				for i, f := range stack {
					if f.node == w {
						return pathOf(stack[i:])
					}
				}
			case unvisited:
				color[w] = inProgress
				stack = append(stack, frame{node: w})
			}
		}
	}
	return nil
}

func findUndirectedCycle(g *graph.Graph) []int {
	n := g.NodeCount()
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ns, _ := g.Neighbors(top.node)
			if top.next >= len(ns) {
				stack = stack[:len(stack)-1]
				continue
			}
			w := ns[top.next]
			top.next++
			if w == parent[top.node] && !top.parentSeen {
				top.parentSeen = true
				continue
			}
			if visited[w] {
				return closeUndirected(parent, top.node, w)
			}
			visited[w] = true
			parent[w] = top.node
			stack = append(stack, frame{node: w})
		}
	}
	return nil
}

func pathOf(frames []frame) []int {
	path := make([]int, len(frames))
	for i, f := range frames {
		path[i] = f.node
	}
	return path
}

// closeUndirected reconstructs the cycle formed when u meets the visited,
// non-excused neighbor w. Normally w is an ancestor of u and the cycle is
// the parent chain w..u; a self-loop or a parallel edge to u's own child
// are the two special shapes.
func closeUndirected(parent []int, u, w int) []int {
	if u == w {
		return []int{u} // self-loop
	}
	if parent[w] == u {
		return []int{u, w} // parallel edge to an already-finished child
	}
	var chain []int
	for x := u; x != -1; x = parent[x] {
		chain = append(chain, x)
		if x == w {
			break
		}
	}
	// Reverse so the path runs w -> ... -> u, closed by the edge u-w.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
