// Package pkg provides the core libraries for Knotwork graph analysis.
//
// # Overview
//
// Knotwork answers structural questions about directed and undirected
// graphs: reachability, cycle membership, dependency order, and connected
// components. The pkg directory is organized into four main areas:
//
//  1. [graph] - Adjacency storage and traversal (DFS, BFS)
//  2. [graph/cycle], [graph/toposort] - Structural analysis
//  3. [dsu] - Disjoint-set union for incremental connectivity
//  4. [render] - DOT/SVG/PNG output for node-link diagrams
//
// # Architecture
//
// The typical data flow through Knotwork:
//
//	Edge list (TOML manifest or API)
//	         ↓
//	graph.Build → *graph.Graph
//	         ↓
//	traverse / cycle / toposort / dsu
//	         ↓
//	Tables, walk playback, or render/nodelink output
//
// Each analysis package depends only on [graph]; the CLI in internal/cli
// composes them.
package pkg
