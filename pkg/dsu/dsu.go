package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode is returned when an element id falls outside [0, n).
	ErrInvalidNode = errors.New("dsu: element id out of range")

	// ErrNegativeCount is returned by [New] when the element count is negative.
	ErrNegativeCount = errors.New("dsu: negative element count")
)

// DSU partitions the elements [0, n) into disjoint sets.
// The zero value is an empty universe; use [New] for anything larger.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New creates a DSU where every element of [0, n) starts as its own
// singleton set.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d, nil
}

// Len returns the size of the element universe n.
func (d *DSU) Len() int { return len(d.parent) }

// Sets returns the current number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

// Find returns the canonical representative of x's set. Every node on the
// walked parent chain is re-pointed directly at the root, so repeated
// lookups are amortized near-constant. Compression changes the tree shape
// only, never the representative. Returns ErrInvalidNode if x is outside
// [0, n).
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("element %d: %w", x, ErrInvalidNode)
	}
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root, nil
}

// Union merges the sets containing x and y and reports whether a merge
// happened. A false return with nil error means the two were already in
// the same set - the cycle signal when unioning undirected edges.
//
// The lower-rank root is attached under the higher-rank one; only when the
// ranks are equal does the surviving root's rank grow. Without this order
// repeated unions can degenerate into a chain and drag Find to O(n).
func (d *DSU) Union(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--
	return true, nil
}

// Connected reports whether x and y are in the same set.
// Returns ErrInvalidNode if either id is outside [0, n).
func (d *DSU) Connected(x, y int) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

// Components returns the current partition as one slice of members per
// set. Components are ordered by their smallest member and members are
// ascending, so equal partitions always render identically.
func (d *DSU) Components() [][]int {
	groups := make(map[int][]int, d.sets)
	var reps []int
	for x := range d.parent {
		root, _ := d.Find(x)
		if _, seen := groups[root]; !seen {
			reps = append(reps, root)
		}
		groups[root] = append(groups[root], x)
	}
	// Members are ascending already (x iterated in order); reps are first
	// encountered in ascending smallest-member order for the same reason.
	out := make([][]int, 0, len(reps))
	for _, r := range reps {
		out = append(out, groups[r])
	}
	return out
}
