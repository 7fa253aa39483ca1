package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/dsu"
)

// newComponentsCmd creates the components command: connectivity grouping
// via union-find over the manifest's edge list.
func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "Group a graph manifest's nodes into connected components",
		Long: `Group a graph manifest's nodes into connected components.

Edges are fed into a union-find structure regardless of direction, so for
directed manifests the grouping reflects weak connectivity. For undirected
manifests, edges whose union merges nothing are reported as redundant:
each one closes a cycle among already-connected nodes.

Examples:
  knotwork components deps.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, labels, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			d, err := dsu.New(g.NodeCount())
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			var redundant [][2]int
			for u := 0; u < g.NodeCount(); u++ {
				ns, _ := g.Neighbors(u)
				for _, v := range ns {
					if !g.Directed() && v < u {
						continue // undirected edges appear on both lists
					}
					merged, err := d.Union(u, v)
					if err != nil {
						return err
					}
					if !merged && !g.Directed() {
						redundant = append(redundant, [2]int{u, v})
					}
				}
			}
			prog.done(fmt.Sprintf("Grouped %d nodes into %d components", g.NodeCount(), d.Sets()))

			rows := make([][]string, 0, d.Sets())
			for i, members := range d.Components() {
				names := make([]string, len(members))
				for j, u := range members {
					names[j] = nodeName(labels, u)
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					fmt.Sprintf("%d", len(members)),
					strings.Join(names, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"#", "Size", "Members"}, rows))

			for _, e := range redundant {
				printInfo(cmd.OutOrStdout(), "edge %s %s %s closes a cycle",
					nodeName(labels, e[0]), iconArrow, nodeName(labels, e[1]))
			}
			return nil
		},
	}

	return cmd
}
