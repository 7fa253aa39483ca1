// Package nodelink renders graphs as traditional node-link diagrams.
//
// # Overview
//
// This package produces Graphviz visualizations of a [graph.Graph]:
// directed graphs become digraphs with arrows, undirected graphs become
// plain graphs with bare links. Duplicate edges and self-loops are drawn
// as stored.
//
// # Usage
//
// Convert a graph to DOT source, then render in-process:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Labels: labels})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools or customized before rendering.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], a pure-Go/WASM Graphviz,
// so no system Graphviz installation is required.
package nodelink
