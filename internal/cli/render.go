package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
	"github.com/pubkit/pubfig/pkg/figure/sink"
	"github.com/pubkit/pubfig/pkg/figure/styles"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	grid        string   // grid shape, "RxC"
	output      string   // output file (single format) or base path (multiple)
	formats     []string // output formats: pdf, png, svg, tex
	dpi         int      // raster resolution for png output
	config      string   // style config file (TOML)
	fontScale   float64  // font size multiplier
	interactive bool     // pick the grid shape interactively
}

// newRenderCmd creates the render command for generating a demo figure.
//
// Default settings:
//   - grid: 1x1
//   - format: pdf
//   - output: plot.pdf
//   - dpi: 50
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		grid:      "1x1",
		dpi:       sink.DefaultDPI,
		fontScale: 1.0,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a styled demo figure for a grid shape",
		Long: `Render the demo waveform into an R x C panel grid.

The figure's physical size follows the publication sizing policy: curated
aspect ratios for common small grids, geometric decay for everything else.
Use --config to override the default style with a TOML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.grid, "grid", "g", opts.grid, "grid shape as RxC (e.g. 2x3)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), png, svg, tex (comma-separated)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", opts.dpi, "raster resolution for png output")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "style config file (TOML)")
	cmd.Flags().Float64Var(&opts.fontScale, "font-scale", opts.fontScale, "font size multiplier")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the grid shape interactively")

	return cmd
}

func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	style, err := resolveStyle(opts.config, opts.fontScale)
	if err != nil {
		return err
	}

	shape, err := figure.ParseGridShape(opts.grid)
	if err != nil {
		return err
	}
	if opts.interactive {
		picked, ok, err := pickShape()
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("Selection cancelled")
			return nil
		}
		shape = picked
	}

	fig, err := figure.New(style, shape)
	if err != nil {
		return err
	}
	if err := fillDemo(fig); err != nil {
		return err
	}
	logger.Debug("figure sized", "shape", shape, "width_cm", fig.Dims().Width, "height_cm", fig.Dims().Height)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s figure...", shape))
	spinner.Start()

	paths := make([]string, 0, len(opts.formats))
	for _, format := range opts.formats {
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := sink.Save(fig, path, sink.WithDPI(opts.dpi)); err != nil {
			spinner.StopWithError("Render failed")
			return err
		}
		paths = append(paths, path)
	}
	spinner.Stop()

	for _, path := range paths {
		logger.Infof("Plot saved to %s", path)
		printSuccess("%s", path)
	}
	return nil
}

// outputPath decides where one rendered format lands. With a single format
// the --output flag names the file directly; with several it is a base
// path that each format appends its extension to.
func outputPath(output, format string, multi bool) string {
	if output == "" {
		if format == "pdf" {
			return sink.DefaultFilename
		}
		return "plot." + format
	}
	if !multi {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}

// resolveStyle loads the style config (or the default) and applies the
// font scale.
func resolveStyle(config string, fontScale float64) (styles.Style, error) {
	if err := errors.ValidateFontScale(fontScale); err != nil {
		return styles.Style{}, err
	}

	style := styles.Default()
	if config != "" {
		loaded, err := styles.Load(config)
		if err != nil {
			return styles.Style{}, err
		}
		style = loaded
	}
	return style.Scale(fontScale), nil
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["pdf"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"pdf"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(strings.TrimSpace(p)))
	}
	return out
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := sink.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}
