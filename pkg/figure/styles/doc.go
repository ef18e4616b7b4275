// Package styles defines the typographic configuration for publication
// figures.
//
// # Overview
//
// A [Style] bundles every presentation parameter a figure needs: font
// variant and sizes, line width, page margins, and the LaTeX preamble used
// by TeX output. Styles are plain immutable values passed explicitly into
// figure construction; nothing in this package mutates global state, so two
// figures built from different styles never interfere.
//
// [Default] returns the house style. Variations are derived, not mutated:
//
//	small := styles.Default().Scale(0.8)
//
// # Configuration Files
//
// Styles load from TOML files via [Load]. Missing keys fall back to the
// defaults, so a config file only needs the overrides:
//
//	axis_label_size = 10.0
//
//	[margins]
//	left = 0.12
//
// [Style.Save] round-trips a style back to TOML, which the CLI uses to
// scaffold config files.
package styles
