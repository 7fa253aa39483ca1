package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhertel/knotwork/pkg/graph"
)

// ErrBadManifest wraps structural manifest problems: malformed TOML,
// edges that are not pairs, or endpoints outside the node range.
var ErrBadManifest = errors.New("invalid graph manifest")

// Manifest is the TOML description of a graph:
//
//	directed = true
//	nodes    = 4                 # optional; inferred as max id + 1
//	labels   = ["app", "db"]     # optional display names, indexed by id
//	edges    = [[0, 1], [1, 2]]
type Manifest struct {
	Directed bool     `toml:"directed"`
	Nodes    int      `toml:"nodes"`
	Labels   []string `toml:"labels"`
	Edges    [][]int  `toml:"edges"`
}

// loadManifest reads a TOML manifest and builds the described graph.
// The returned labels slice may be shorter than the node count (or nil);
// callers fall back to numeric ids for missing entries.
func loadManifest(path string) (*graph.Graph, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrBadManifest, path, err)
	}

	edges := make([][2]int, len(m.Edges))
	for i, e := range m.Edges {
		if len(e) != 2 {
			return nil, nil, fmt.Errorf("%w: edge %d has %d endpoints, want 2", ErrBadManifest, i, len(e))
		}
		edges[i] = [2]int{e[0], e[1]}
	}

	g, err := graph.Build(m.Nodes, edges, m.Directed)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
	}
	// A labels list can pin the node count higher than the edges imply.
	if m.Nodes == 0 && len(m.Labels) > g.NodeCount() {
		g, err = graph.Build(len(m.Labels), edges, m.Directed)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrBadManifest, err)
		}
	}
	return g, m.Labels, nil
}

// nodeName renders u as its label when one exists, otherwise its id.
func nodeName(labels []string, u int) string {
	if u < len(labels) && labels[u] != "" {
		return labels[u]
	}
	return fmt.Sprintf("%d", u)
}
