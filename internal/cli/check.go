package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/graph/cycle"
)

// ErrCycleFound is returned by the check command when the graph contains a
// cycle, so the process exits non-zero for scripting.
var ErrCycleFound = errors.New("graph contains a cycle")

// newCheckCmd creates the check command: cycle detection over a manifest.
// The detector variant (directed vs undirected) follows the manifest's
// directed flag.
func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Detect cycles in a graph manifest",
		Long: `Detect cycles in a graph manifest.

Directed graphs are checked for back edges via three-state coloring;
undirected graphs via parent-excluding depth-first search. When a cycle is
found the command prints one offending path and exits non-zero.

Examples:
  knotwork check deps.toml
  knotwork check --quiet deps.toml && echo acyclic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g, labels, err := loadManifest(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %d nodes, %d edges (directed=%v)",
				g.NodeCount(), g.EdgeCount(), g.Directed())

			prog := newProgress(logger)
			path := cycle.Find(g)
			prog.done("Checked " + args[0])

			if path == nil {
				if !quiet {
					printSuccess(cmd.OutOrStdout(), "no cycles in %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
				}
				return nil
			}

			if !quiet {
				names := make([]string, 0, len(path)+1)
				for _, u := range path {
					names = append(names, nodeName(labels, u))
				}
				names = append(names, nodeName(labels, path[0]))
				printError(cmd.OutOrStdout(), "cycle: %s", strings.Join(names, " "+iconArrow+" "))
			}
			return ErrCycleFound
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit code only")

	return cmd
}
