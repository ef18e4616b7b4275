// Package pkg provides the core libraries for pubfig figure rendering.
//
// # Overview
//
// pubfig produces publication-formatted figures: serif typography,
// LaTeX-friendly axis labels, consistent panel decoration, and physical
// sizing tuned for a two-column printed page. The pkg directory is
// organized into five main areas:
//
//  1. [figure] - Figure assembly (grid shapes, sizing policy, panels)
//  2. [figure/styles] - Style configuration (fonts, margins, preamble)
//  3. [figure/sink] - Output encoders (PDF, PNG, SVG, TeX)
//  4. [palette] - The qualitative series palette and grid color
//  5. [cache] - Artifact caching for the preview server
//
// # Architecture
//
// The typical data flow through pubfig:
//
//	styles.Style + figure.GridShape
//	         ↓
//	    [figure] package (sizing policy + panel decoration)
//	         ↓
//	    panel data via Line/Scatter
//	         ↓
//	    [figure/sink] package (format dispatch)
//	         ↓
//	    PDF/PNG/SVG/TeX output
//
// # Quick Start
//
// Build a two-row figure, plot into its panels, and save it:
//
//	import (
//	    "github.com/pubkit/pubfig/pkg/figure"
//	    "github.com/pubkit/pubfig/pkg/figure/sink"
//	    "github.com/pubkit/pubfig/pkg/figure/styles"
//	)
//
//	fig, err := figure.New(styles.Default(), figure.GridShape{Rows: 2, Cols: 1})
//	if err != nil {
//	    return err
//	}
//	top := fig.Panels()[0]
//	if err := top.Line("signal", xs, ys); err != nil {
//	    return err
//	}
//	top.SetXLabel("t", "sec")
//	top.SetYLabel("y", "rad")
//	if err := sink.Save(fig, "plot.pdf"); err != nil {
//	    return err
//	}
//
// Supporting packages round out the toolkit: [errors] defines coded
// errors shared across the module, [buildinfo] carries version metadata
// injected at build time.
package pkg
