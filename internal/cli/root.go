package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pubkit/pubfig/pkg/buildinfo"
)

// Execute runs the pubfig CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render,
// gallery, style, serve), configures logging based on the --verbose flag,
// and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. Cancelling ctx stops long-running commands such as
// serve.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "pubfig",
		Short:        "pubfig renders publication-formatted figures",
		Long:         `pubfig is a CLI tool for producing publication-formatted figures: serif typography, LaTeX-friendly labels, consistent panel decoration, and physical sizing tuned for a two-column printed page.`,
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
	root.AddCommand(newGalleryCmd())
	root.AddCommand(newStyleCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
