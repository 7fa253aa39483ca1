package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhertel/knotwork/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "knotwork"

// Execute runs the knotwork CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (check, order,
// walk, components, render, completion), configures logging based on the
// --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Knotwork analyzes graph connectivity and ordering",
		Long: `Knotwork is a CLI toolkit for graph connectivity and ordering: it detects
cycles, computes topological orders and layers, runs traversals, groups nodes
into connected components, and renders node-link diagrams.

Graphs are described by small TOML manifests:

  directed = true
  nodes    = 4                 # optional; inferred as max id + 1
  labels   = ["app", "db"]     # optional display names
  edges    = [[0, 1], [1, 2]]`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newOrderCmd())
	root.AddCommand(newWalkCmd())
	root.AddCommand(newComponentsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
