package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode is returned when a node id falls outside [0, n).
	// It covers both edge endpoints at build time and lookups afterwards.
	ErrInvalidNode = errors.New("graph: node id out of range")

	// ErrNegativeCount is returned by [Build] when the node count is negative.
	ErrNegativeCount = errors.New("graph: negative node count")
)

// Graph is an immutable directed or undirected graph over node ids [0, n).
// The zero value is not usable - use [Build] to construct one.
type Graph struct {
	directed bool
	adj      [][]int
	edges    int
}

// Build constructs a Graph from an edge list.
//
// nodes fixes the id space [0, nodes). Passing 0 infers the count as the
// highest endpoint id plus one (an empty edge list then yields an empty
// graph). Every endpoint must fall inside the id space, otherwise Build
// returns ErrInvalidNode naming the offending edge.
//
// For undirected graphs each edge (u,v) is appended to both u's and v's
// adjacency lists; directed edges only to u's. Duplicate edges are kept
// (one adjacency entry per insertion) and self-loops are allowed.
func Build(nodes int, edges [][2]int, directed bool) (*Graph, error) {
	if nodes < 0 {
		return nil, ErrNegativeCount
	}
	if nodes == 0 {
		for _, e := range edges {
			if e[0] >= nodes {
				nodes = e[0] + 1
			}
			if e[1] >= nodes {
				nodes = e[1] + 1
			}
		}
	}

	g := &Graph{
		directed: directed,
		adj:      make([][]int, nodes),
	}
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= nodes || v < 0 || v >= nodes {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, u, v, ErrInvalidNode)
		}
		g.adj[u] = append(g.adj[u], v)
		if !directed && u != v {
			g.adj[v] = append(g.adj[v], u)
		}
		g.edges++
	}
	return g, nil
}

// NodeCount returns the size of the id space n.
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of inserted edges. Undirected edges count
// once even though they appear on two adjacency lists.
func (g *Graph) EdgeCount() int { return g.edges }

// Directed reports whether the graph was built as directed.
func (g *Graph) Directed() bool { return g.directed }

// Neighbors returns u's adjacency list in insertion order.
// The returned slice is a read-only view into the graph - callers must not
// modify it. Returns ErrInvalidNode if u is outside [0, n).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= len(g.adj) {
		return nil, fmt.Errorf("node %d: %w", u, ErrInvalidNode)
	}
	return g.adj[u], nil
}

// Degree returns the length of u's adjacency list: the out-degree for
// directed graphs, the incident edge count for undirected ones (self-loops
// counted once). Returns ErrInvalidNode if u is outside [0, n).
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= len(g.adj) {
		return 0, fmt.Errorf("node %d: %w", u, ErrInvalidNode)
	}
	return len(g.adj[u]), nil
}

// InDegrees returns the indegree of every node, computed in one pass over
// the adjacency lists. For undirected graphs this equals the degree.
func (g *Graph) InDegrees() []int {
	in := make([]int, len(g.adj))
	for _, ns := range g.adj {
		for _, v := range ns {
			in[v]++
		}
	}
	return in
}

// Contains reports whether u is inside the id space [0, n).
func (g *Graph) Contains(u int) bool { return u >= 0 && u < len(g.adj) }
