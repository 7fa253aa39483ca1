package toposort

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mhertel/knotwork/pkg/graph"
)

func TestSort_Diamond(t *testing.T) {
	g, _ := graph.Build(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, true)
	order, err := Sort(g)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if len(order) != 4 {
		t.Fatalf("len(order) = %d, want 4", len(order))
	}
	if order[0] != 0 {
		t.Errorf("order[0] = %d, want 0", order[0])
	}
	if order[3] != 3 {
		t.Errorf("order[3] = %d, want 3", order[3])
	}
}

func TestSort_EdgesRespected(t *testing.T) {
	edges := [][2]int{{5, 2}, {5, 0}, {4, 0}, {4, 1}, {2, 3}, {3, 1}}
	g, _ := graph.Build(6, edges, true)
	order, err := Sort(g)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	pos := make([]int, 6)
	for i, u := range order {
		pos[u] = i
	}
	for _, e := range edges {
		if pos[e[0]] >= pos[e[1]] {
			t.Errorf("edge %d->%d violated: positions %d, %d", e[0], e[1], pos[e[0]], pos[e[1]])
		}
	}
}

func TestSort_CycleRejected(t *testing.T) {
	g, _ := graph.Build(4, [][2]int{{0, 1}, {1, 2}, {2, 0}}, true)
	order, err := Sort(g)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("Sort() error = %v, want ErrCycle", err)
	}
	if order != nil {
		t.Errorf("Sort() = %v, want nil (no partial order on cycle)", order)
	}
}

func TestSort_SelfLoopIsCycle(t *testing.T) {
	g, _ := graph.Build(2, [][2]int{{0, 1}, {1, 1}}, true)
	if _, err := Sort(g); !errors.Is(err, ErrCycle) {
		t.Errorf("Sort() error = %v, want ErrCycle", err)
	}
}

func TestSort_Deterministic(t *testing.T) {
	// Three independent sources; ascending id seeding fixes the order.
	g, _ := graph.Build(4, [][2]int{{2, 3}, {0, 3}, {1, 3}}, true)
	first, err := Sort(g)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(first, want) {
		t.Errorf("Sort() = %v, want %v", first, want)
	}
	for i := 0; i < 5; i++ {
		again, _ := Sort(g)
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("Sort() not deterministic: %v vs %v", again, first)
		}
	}
}

func TestSort_Undirected(t *testing.T) {
	g, _ := graph.Build(2, [][2]int{{0, 1}}, false)
	if _, err := Sort(g); !errors.Is(err, ErrUndirected) {
		t.Errorf("Sort() error = %v, want ErrUndirected", err)
	}
}

func TestSort_Empty(t *testing.T) {
	g, _ := graph.Build(0, nil, true)
	order, err := Sort(g)
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if len(order) != 0 {
		t.Errorf("Sort() = %v, want empty", order)
	}
}

func TestLayers_LongestPath(t *testing.T) {
	// 0 -> 1 -> 3 and 0 -> 3: node 3 must sit below 1, not beside it.
	g, _ := graph.Build(4, [][2]int{{0, 1}, {1, 3}, {0, 3}, {0, 2}}, true)
	layers, err := Layers(g)
	if err != nil {
		t.Fatalf("Layers() error = %v", err)
	}
	want := [][]int{{0}, {1, 2}, {3}}
	if !reflect.DeepEqual(layers, want) {
		t.Errorf("Layers() = %v, want %v", layers, want)
	}
}

func TestLayers_CycleRejected(t *testing.T) {
	g, _ := graph.Build(2, [][2]int{{0, 1}, {1, 0}}, true)
	if _, err := Layers(g); !errors.Is(err, ErrCycle) {
		t.Errorf("Layers() error = %v, want ErrCycle", err)
	}
}
