package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/graph/toposort"
)

// newOrderCmd creates the order command: topological sorting and layering.
func newOrderCmd() *cobra.Command {
	var layers bool

	cmd := &cobra.Command{
		Use:   "order FILE",
		Short: "Compute a topological order of a directed graph manifest",
		Long: `Compute a topological order of a directed graph manifest.

Every edge points from an earlier to a later entry in the printed order.
Ties between simultaneously ready nodes break by ascending id, so equal
manifests always produce equal output. With --layers, nodes are grouped
into rows by longest-path depth instead.

Examples:
  knotwork order deps.toml
  knotwork order --layers deps.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, labels, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			defer prog.done("Ordered " + args[0])

			if layers {
				rows, err := toposort.Layers(g)
				if err != nil {
					return err
				}
				tbl := make([][]string, 0, len(rows))
				for i, row := range rows {
					names := make([]string, len(row))
					for j, u := range row {
						names[j] = nodeName(labels, u)
					}
					tbl = append(tbl, []string{fmt.Sprintf("%d", i), strings.Join(names, ", ")})
				}
				fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"Layer", "Nodes"}, tbl))
				return nil
			}

			order, err := toposort.Sort(g)
			if err != nil {
				return err
			}
			for i, u := range order {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %s\n", i+1, nodeName(labels, u))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&layers, "layers", false, "group nodes into longest-path layers")

	return cmd
}
