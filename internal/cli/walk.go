package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/graph/traverse"
)

// walkOpts holds the command-line flags for the walk command.
type walkOpts struct {
	start       int    // traversal start node
	algo        string // "bfs" or "dfs"
	interactive bool   // open the step-through explorer
}

// newWalkCmd creates the walk command: BFS/DFS traversal from a start node.
func newWalkCmd() *cobra.Command {
	opts := walkOpts{algo: "bfs"}

	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "Traverse a graph manifest breadth- or depth-first",
		Long: `Traverse a graph manifest breadth- or depth-first from a start node.

Prints each reached node with its discovery index, depth, and tree parent.
Nodes unreachable from the start are omitted. BFS depth equals the
hop-count shortest distance. With --interactive, the traversal opens in a
scrollable step-through explorer.

Examples:
  knotwork walk deps.toml --start 0
  knotwork walk deps.toml --algo dfs
  knotwork walk deps.toml --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, labels, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			var v *traverse.Visit
			switch opts.algo {
			case "bfs":
				v, err = traverse.BFS(g, opts.start)
			case "dfs":
				v, err = traverse.DFS(g, opts.start)
			default:
				return fmt.Errorf("unknown algorithm %q (want bfs or dfs)", opts.algo)
			}
			if err != nil {
				return err
			}
			logger.Debugf("%s reached %d of %d nodes", opts.algo, len(v.Order), g.NodeCount())

			if opts.interactive {
				m := newWalkModel(opts.algo, v, labels)
				_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
				return err
			}

			rows := walkRows(v, labels)
			fmt.Fprintln(cmd.OutOrStdout(), newTable([]string{"#", "Node", "Depth", "Parent"}, rows))
			if unreached := g.NodeCount() - len(v.Order); unreached > 0 {
				printInfo(cmd.OutOrStdout(), "%d nodes unreachable from %s", unreached, nodeName(labels, opts.start))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.start, "start", "s", 0, "start node id")
	cmd.Flags().StringVarP(&opts.algo, "algo", "a", opts.algo, "traversal algorithm: bfs or dfs")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "open the step-through explorer")

	return cmd
}

// walkRows converts a visitation record into printable table rows.
func walkRows(v *traverse.Visit, labels []string) [][]string {
	rows := make([][]string, 0, len(v.Order))
	for i, u := range v.Order {
		parent := "-"
		if p := v.Parent[u]; p != traverse.None {
			parent = nodeName(labels, p)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			nodeName(labels, u),
			fmt.Sprintf("%d", v.Depth[u]),
			parent,
		})
	}
	return rows
}
