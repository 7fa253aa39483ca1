package graph

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuild_Undirected(t *testing.T) {
	g, err := Build(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, false)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if g.Directed() {
		t.Error("Directed() = true, want false")
	}

	// Each undirected edge must appear on both endpoint lists.
	ns, err := g.Neighbors(1)
	if err != nil {
		t.Fatalf("Neighbors(1) error = %v", err)
	}
	if want := []int{0, 2}; !reflect.DeepEqual(ns, want) {
		t.Errorf("Neighbors(1) = %v, want %v", ns, want)
	}
}

func TestBuild_DirectedOneSided(t *testing.T) {
	g, err := Build(3, [][2]int{{0, 1}, {1, 2}}, true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	ns, _ := g.Neighbors(1)
	if want := []int{2}; !reflect.DeepEqual(ns, want) {
		t.Errorf("Neighbors(1) = %v, want %v", ns, want)
	}
	ns, _ = g.Neighbors(2)
	if len(ns) != 0 {
		t.Errorf("Neighbors(2) = %v, want empty", ns)
	}
}

func TestBuild_InferredNodeCount(t *testing.T) {
	g, err := Build(0, [][2]int{{0, 5}, {2, 1}}, true)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.NodeCount() != 6 {
		t.Errorf("NodeCount() = %d, want 6", g.NodeCount())
	}
}

func TestBuild_InvalidEndpoint(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]int
	}{
		{"target out of range", [][2]int{{0, 4}}},
		{"source out of range", [][2]int{{4, 0}}},
		{"negative id", [][2]int{{-1, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Build(4, tc.edges, false); !errors.Is(err, ErrInvalidNode) {
				t.Errorf("Build() error = %v, want ErrInvalidNode", err)
			}
		})
	}
}

func TestBuild_NegativeCount(t *testing.T) {
	if _, err := Build(-1, nil, false); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Build() error = %v, want ErrNegativeCount", err)
	}
}

func TestBuild_DuplicateEdgesKept(t *testing.T) {
	g, err := Build(2, [][2]int{{0, 1}, {0, 1}}, false)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	ns, _ := g.Neighbors(0)
	if want := []int{1, 1}; !reflect.DeepEqual(ns, want) {
		t.Errorf("Neighbors(0) = %v, want %v", ns, want)
	}
}

func TestBuild_SelfLoopStoredOnce(t *testing.T) {
	g, err := Build(2, [][2]int{{1, 1}}, false)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	ns, _ := g.Neighbors(1)
	if want := []int{1}; !reflect.DeepEqual(ns, want) {
		t.Errorf("Neighbors(1) = %v, want %v", ns, want)
	}
}

func TestNeighbors_InvalidNode(t *testing.T) {
	g, _ := Build(2, nil, false)
	if _, err := g.Neighbors(2); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Neighbors(2) error = %v, want ErrInvalidNode", err)
	}
	if _, err := g.Neighbors(-1); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Neighbors(-1) error = %v, want ErrInvalidNode", err)
	}
}

func TestInDegrees(t *testing.T) {
	g, _ := Build(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, true)
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(g.InDegrees(), want) {
		t.Errorf("InDegrees() = %v, want %v", g.InDegrees(), want)
	}
}

func TestDegree(t *testing.T) {
	g, _ := Build(3, [][2]int{{0, 1}, {0, 2}}, true)
	d, err := g.Degree(0)
	if err != nil {
		t.Fatalf("Degree(0) error = %v", err)
	}
	if d != 2 {
		t.Errorf("Degree(0) = %d, want 2", d)
	}
	if _, err := g.Degree(3); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Degree(3) error = %v, want ErrInvalidNode", err)
	}
}
