package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path
	showIDs bool   // prefix labels with numeric ids
}

// newRenderCmd creates the render command: node-link diagrams via Graphviz.
// The output format follows the file extension: .dot, .svg, or .png.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{output: "graph.svg"}

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a graph manifest as a node-link diagram",
		Long: `Render a graph manifest as a node-link diagram.

The output format is chosen by the -o extension: .dot writes Graphviz
source, .svg and .png render in-process. Directed manifests draw arrows,
undirected ones plain links.

Examples:
  knotwork render deps.toml -o deps.svg
  knotwork render deps.toml -o deps.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, labels, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			dot := nodelink.ToDOT(g, nodelink.Options{Labels: labels, ShowIDs: opts.showIDs})

			prog := newProgress(logger)
			var data []byte
			switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
			case ".dot":
				data = []byte(dot)
			case ".svg":
				data, err = nodelink.RenderSVG(dot)
			case ".png":
				data, err = nodelink.RenderPNG(dot)
			default:
				return fmt.Errorf("unsupported output format %q (want .dot, .svg, or .png)", ext)
			}
			if err != nil {
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Rendered %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

			printFile(cmd.OutOrStdout(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (.dot, .svg, or .png)")
	cmd.Flags().BoolVar(&opts.showIDs, "show-ids", false, "prefix node labels with numeric ids")

	return cmd
}
