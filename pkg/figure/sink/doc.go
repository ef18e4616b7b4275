// Package sink provides output format renderers for figures.
//
// # Overview
//
// A "sink" transforms a built [figure.Figure] into a final output format.
// This package provides renderers for:
//
//   - PDF: print-ready vector output with embedded fonts
//   - SVG: scalable vector graphics
//   - PNG: raster output with configurable resolution
//   - TEX: a pgf/LaTeX document carrying the style's preamble
//
// Each format has a Render function returning the encoded bytes:
//
//	pdf, err := sink.RenderPDF(fig)
//	png, err := sink.RenderPNG(fig, sink.WithDPI(300))
//
// [Save] dispatches on the output path's extension and writes the file:
//
//	err := sink.Save(fig, "plot.pdf")
//
// # LaTeX Output
//
// [RenderTeX] is the typesetting delegation point: panel labels written in
// math mode pass through to LaTeX unmodified, and the emitted document
// includes the style's preamble (babel, font and input encodings), so
// Cyrillic unit names compile as-is. The other sinks draw label text
// literally.
//
// All rendering, text layout, and encoding is done by the plotting engine's
// canvas backends; this package only selects backends and wires the
// figure's physical size through. Engine failures are wrapped with
// RENDER_FAILED and propagated.
package sink
