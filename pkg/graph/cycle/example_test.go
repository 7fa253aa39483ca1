package cycle_test

import (
	"fmt"

	"github.com/mhertel/knotwork/pkg/graph"
	"github.com/mhertel/knotwork/pkg/graph/cycle"
)

func ExampleHasCycle() {
	chain, _ := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, false)
	closed, _ := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, false)

	fmt.Println(cycle.HasCycle(chain))
	fmt.Println(cycle.HasCycle(closed))
	// Output:
	// false
	// true
}

func ExampleFind() {
	// A directed cycle reached through a tail: 0 -> 1 -> 2 -> 3 -> 1.
	g, _ := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}}, true)

	fmt.Println(cycle.Find(g))
	// Output:
	// [1 2 3]
}
