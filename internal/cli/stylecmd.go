package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newStyleCmd creates the style command for inspecting and scaffolding
// style configuration files.
func newStyleCmd() *cobra.Command {
	var (
		config    string
		initPath  string
		fontScale float64
	)

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the resolved style configuration as TOML",
		Long: `Print the resolved style configuration as TOML.

Without flags this shows the default publication style. With --config the
file's overrides are merged in first, so the output is exactly what render
and serve would use. --init writes the result to a file instead, as a
starting point for a custom config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(config, fontScale)
			if err != nil {
				return err
			}

			if initPath != "" {
				if err := style.Save(initPath); err != nil {
					return err
				}
				printSuccess("Style config written to %s", initPath)
				return nil
			}

			fmt.Println(styleTitle.Render("# pubfig style"))
			return style.Write(os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&config, "config", "c", "", "style config file (TOML)")
	cmd.Flags().StringVar(&initPath, "init", "", "write the resolved style to a file instead of printing")
	cmd.Flags().Float64Var(&fontScale, "font-scale", 1.0, "font size multiplier")

	return cmd
}
