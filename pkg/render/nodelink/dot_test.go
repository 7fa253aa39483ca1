package nodelink

import (
	"strings"
	"testing"

	"github.com/mhertel/knotwork/pkg/graph"
)

func TestToDOT_Directed(t *testing.T) {
	g, _ := graph.Build(3, [][2]int{{0, 1}, {1, 2}}, true)

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("ToDOT() should start with 'digraph G {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}
	for _, exp := range []string{"rankdir=TB", "n0 -> n1", "n1 -> n2"} {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q", exp)
		}
	}
}

func TestToDOT_UndirectedEdgesOnce(t *testing.T) {
	g, _ := graph.Build(2, [][2]int{{1, 0}}, false)

	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() should start with 'graph G {' for undirected graphs")
	}
	if got := strings.Count(dot, "--"); got != 1 {
		t.Errorf("ToDOT() emitted %d undirected links, want 1", got)
	}
	if !strings.Contains(dot, "n0 -- n1") {
		t.Error("ToDOT() should emit the edge from its lower endpoint")
	}
}

func TestToDOT_Labels(t *testing.T) {
	g, _ := graph.Build(3, [][2]int{{0, 1}}, true)

	dot := ToDOT(g, Options{Labels: []string{"app", "db"}})

	for _, label := range []string{"app", "db"} {
		if !strings.Contains(dot, label) {
			t.Errorf("ToDOT() should contain label %q", label)
		}
	}
	// Node 2 has no label entry and falls back to its id.
	if !strings.Contains(dot, `n2 [label="2"]`) {
		t.Error("ToDOT() should fall back to the numeric id for unlabeled nodes")
	}
}

func TestToDOT_SelfLoop(t *testing.T) {
	g, _ := graph.Build(1, [][2]int{{0, 0}}, false)

	dot := ToDOT(g, Options{})

	if got := strings.Count(dot, "n0 -- n0"); got != 1 {
		t.Errorf("ToDOT() emitted self-loop %d times, want 1", got)
	}
}

func TestToDOT_Empty(t *testing.T) {
	g, _ := graph.Build(0, nil, true)

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "digraph G {") {
		t.Error("ToDOT() should produce valid DOT for an empty graph")
	}
}
