// Package figure builds publication-formatted figures: grids of decorated
// panels with consistent typography and a physical-size policy tuned for a
// two-column printed page.
//
// # Overview
//
// The package has one piece of real logic, [ComputeDimensions], which maps
// a [GridShape] to physical [Dimensions] in centimeters. Small common grids
// use a curated table of aspect ratios; anything else falls back to a
// geometric decay so width shrinks with extra columns and height with extra
// rows, never dropping below a minimum legible panel size.
//
// Everything else delegates to the plotting engine (gonum.org/v1/plot):
// [New] asks the policy for a size, builds one engine plot per grid cell,
// and decorates each with the style's fonts, a dotted grid, a zero-position
// axis guide, and default labels.
//
// # Usage
//
//	fig, err := figure.New(styles.Default(), figure.GridShape{Rows: 2, Cols: 1})
//	if err != nil {
//	    return err
//	}
//	top, _ := fig.Panel(0, 0)
//	if err := top.Line("measured", xs, ys); err != nil {
//	    return err
//	}
//	top.SetXLabel("t", "sec")
//	top.SetYLabel("A", "rad")
//
// Output goes through the sink subpackage:
//
//	err = sink.Save(fig, "plot.pdf")
//
// # Labels
//
// Axis labels follow the "$symbol$, unit" convention. The math-mode text is
// passed through to the output verbatim; the TeX sink hands it to LaTeX for
// real typesetting, while raster sinks draw it as written.
//
// Figures hold no global state and are independent of each other, but a
// single figure must not be mutated from multiple goroutines.
package figure
