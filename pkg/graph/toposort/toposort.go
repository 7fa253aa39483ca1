package toposort

import (
	"errors"

	"github.com/mhertel/knotwork/pkg/graph"
)

var (
	// ErrCycle is returned when the graph contains a directed cycle and no
	// total order exists.
	ErrCycle = errors.New("toposort: graph contains a cycle")

	// ErrUndirected is returned when the graph was built undirected.
	ErrUndirected = errors.New("toposort: requires a directed graph")
)

// Sort returns a topological order of g: a permutation of all node ids in
// which every edge u→v has u before v. Nodes that become ready at the same
// step are emitted in ascending id order relative to the initial seeding
// and FIFO thereafter, so the result is deterministic.
//
// Returns ErrCycle if g contains a cycle and ErrUndirected if g is not
// directed. No partial order is ever returned.
func Sort(g *graph.Graph) ([]int, error) {
	if !g.Directed() {
		return nil, ErrUndirected
	}

	n := g.NodeCount()
	inDegree := g.InDegrees()

	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if inDegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		ns, _ := g.Neighbors(u)
		for _, w := range ns {
			inDegree[w]--
			if inDegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	// Anything left with positive indegree sits on a cycle.
	if len(order) != n {
		return nil, ErrCycle
	}
	return order, nil
}

// Layers groups g's nodes into rows by longest-path depth: sources occupy
// row 0 and every other node lands one row below its deepest predecessor,
// so each row depends only on rows above it. Node ids within a row are in
// ascending order. Returns nil for an empty graph.
//
// Returns ErrCycle if g contains a cycle and ErrUndirected if g is not
// directed.
func Layers(g *graph.Graph) ([][]int, error) {
	if !g.Directed() {
		return nil, ErrUndirected
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, nil
	}
	inDegree := g.InDegrees()
	row := make([]int, n)

	queue := make([]int, 0, n)
	for u := 0; u < n; u++ {
		if inDegree[u] == 0 {
			queue = append(queue, u)
		}
	}

	processed := 0
	maxRow := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		processed++

		ns, _ := g.Neighbors(u)
		for _, w := range ns {
			if r := row[u] + 1; r > row[w] {
				row[w] = r
				if r > maxRow {
					maxRow = r
				}
			}
			inDegree[w]--
			if inDegree[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	if processed != n {
		return nil, ErrCycle
	}

	layers := make([][]int, maxRow+1)
	for u := 0; u < n; u++ {
		layers[row[u]] = append(layers[row[u]], u)
	}
	return layers, nil
}
