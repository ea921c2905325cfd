package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pacak/semantic/pkg/buildinfo"
)

// Execute runs the semantic CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, check,
// completion), configures logging based on the --verbose flag, and executes
// the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Arguments default to os.Args; passing args explicitly overrides them,
// which tests use to drive the command tree.
func Execute(ctx context.Context, args ...string) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "semantic",
		Short:        "Semantic renders man pages and markdown from TOML manifests",
		Long:         `Semantic is a CLI tool for generating UNIX manual pages and markdown documentation from declarative TOML manifests, keeping generated files in sync with their sources.`,
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

	root.AddCommand(newRenderCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newCompletionCmd())

	if len(args) > 0 {
		root.SetArgs(args)
	}

	return root.ExecuteContext(ctx)
}
