package traverse_test

import (
	"fmt"

	"github.com/mhertel/knotwork/pkg/graph"
	"github.com/mhertel/knotwork/pkg/graph/traverse"
)

func ExampleBFS() {
	// 0 - 1 - 2 - 3 chain; BFS depth equals hop distance.
	g, _ := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, false)

	v, _ := traverse.BFS(g, 0)
	fmt.Println("Order:", v.Order)
	fmt.Println("Depth of 3:", v.Depth[3])
	// Output:
	// Order: [0 1 2 3]
	// Depth of 3: 3
}

func ExampleDFS() {
	// DFS descends through the first listed neighbor before siblings.
	g, _ := graph.Build(4, [][2]int{{0, 1}, {0, 3}, {1, 2}}, true)

	v, _ := traverse.DFS(g, 0)
	fmt.Println("Order:", v.Order)
	fmt.Println("Parent of 2:", v.Parent[2])
	// Output:
	// Order: [0 1 2 3]
	// Parent of 2: 1
}
