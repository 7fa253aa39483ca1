package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mhertel/knotwork/pkg/graph"
)

// Options configures node-link diagram generation.
type Options struct {
	// Labels maps node ids to display names. Nodes beyond the slice (or
	// with an empty entry) fall back to their numeric id.
	Labels []string

	// ShowIDs prefixes every label with the numeric node id.
	ShowIDs bool
}

func (o Options) label(u int) string {
	name := ""
	if u < len(o.Labels) {
		name = o.Labels[u]
	}
	switch {
	case name == "":
		return strconv.Itoa(u)
	case o.ShowIDs:
		return fmt.Sprintf("%d %s", u, name)
	default:
		return name
	}
}

// ToDOT converts a graph to Graphviz DOT source. Directed graphs produce a
// digraph with arrow edges, undirected graphs a plain graph with "--"
// links. The result renders with [RenderSVG]/[RenderPNG] or any external
// Graphviz tool.
func ToDOT(g *graph.Graph, opts Options) string {
	kind, arrow := "digraph", "->"
	if !g.Directed() {
		kind, arrow = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for u := 0; u < g.NodeCount(); u++ {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", u, opts.label(u))
	}

	buf.WriteString("\n")
	for u := 0; u < g.NodeCount(); u++ {
		ns, _ := g.Neighbors(u)
		for _, v := range ns {
			// Undirected edges appear on both adjacency lists; emit each
			// once from its lower endpoint (self-loops from themselves).
			if !g.Directed() && v < u {
				continue
			}
			fmt.Fprintf(&buf, "  n%d %s n%d;\n", u, arrow, v)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG bytes using the in-process Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG bytes using the in-process Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
