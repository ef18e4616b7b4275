package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pubkit/pubfig/pkg/figure"
	"github.com/pubkit/pubfig/pkg/figure/sink"
)

// galleryMax bounds the grid sweep: every shape from 1x1 up to
// galleryMax x galleryMax gets one example figure.
const galleryMax = 3

// galleryOpts holds the command-line flags for the gallery command.
type galleryOpts struct {
	outputDir string
	format    string
	dpi       int
	config    string
	fontScale float64
}

// newGalleryCmd creates the gallery command, which renders one demo figure
// per grid combination. Useful for eyeballing the sizing policy across
// shapes at once.
func newGalleryCmd() *cobra.Command {
	opts := galleryOpts{
		outputDir: ".",
		format:    "pdf",
		dpi:       sink.DefaultDPI,
		fontScale: 1.0,
	}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render example figures for all small grid shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormats([]string{opts.format}); err != nil {
				return err
			}
			return runGallery(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for the example figures")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: pdf (default), png, svg, tex")
	cmd.Flags().IntVar(&opts.dpi, "dpi", opts.dpi, "raster resolution for png output")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "style config file (TOML)")
	cmd.Flags().Float64Var(&opts.fontScale, "font-scale", opts.fontScale, "font size multiplier")

	return cmd
}

func runGallery(ctx context.Context, opts *galleryOpts) error {
	logger := loggerFromContext(ctx)

	style, err := resolveStyle(opts.config, opts.fontScale)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering gallery...")
	spinner.Start()
	prog := newProgress(logger)

	count := 0
	for rows := 1; rows <= galleryMax; rows++ {
		for cols := 1; cols <= galleryMax; cols++ {
			if err := ctx.Err(); err != nil {
				spinner.Stop()
				return err
			}

			shape := figure.GridShape{Rows: rows, Cols: cols}
			fig, err := figure.New(style, shape)
			if err != nil {
				spinner.StopWithError("Gallery failed")
				return err
			}
			if err := fillDemo(fig); err != nil {
				spinner.StopWithError("Gallery failed")
				return err
			}

			path := filepath.Join(opts.outputDir, fmt.Sprintf("example_%s.%s", shape, opts.format))
			if err := sink.Save(fig, path, sink.WithDPI(opts.dpi)); err != nil {
				spinner.StopWithError("Gallery failed")
				return err
			}
			logger.Debugf("Plot saved to %s", path)
			count++
		}
	}

	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d figures to %s", count, opts.outputDir))
	return nil
}
