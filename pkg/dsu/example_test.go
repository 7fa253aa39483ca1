package dsu_test

import (
	"fmt"

	"github.com/mhertel/knotwork/pkg/dsu"
)

func ExampleDSU() {
	d, _ := dsu.New(5)
	d.Union(0, 1)
	d.Union(1, 2)
	d.Union(3, 4)

	a, _ := d.Connected(0, 2)
	b, _ := d.Connected(0, 3)
	fmt.Println(a, b)
	fmt.Println("sets:", d.Sets())
	// Output:
	// true false
	// sets: 2
}

func ExampleDSU_Union_cycleSignal() {
	// Feeding undirected edges into a DSU: a union that merges nothing
	// means the edge connects two already-reachable nodes, closing a cycle.
	d, _ := dsu.New(3)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, e := range edges {
		merged, _ := d.Union(e[0], e[1])
		if !merged {
			fmt.Printf("edge (%d,%d) closes a cycle\n", e[0], e[1])
		}
	}
	// Output:
	// edge (2,0) closes a cycle
}
