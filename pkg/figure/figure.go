package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pubkit/pubfig/pkg/figure/styles"
)

// Figure is a grid of decorated panels sharing one style and one physical
// size. A Figure is built fully configured: panels carry their typography,
// grid lines, and default labels from construction on, so drawing code only
// adds series and overrides labels.
//
// Figures are not safe for concurrent use; build and draw a figure from a
// single goroutine.
type Figure struct {
	style  styles.Style
	shape  GridShape
	dims   Dimensions
	panels [][]*Panel
}

// New creates a figure with shape.Rows x shape.Cols panels, sized by
// ComputeDimensions. The style must be a complete configuration (usually
// styles.Default or a Load result); an unconfigured zero style is rejected
// rather than silently falling back to engine defaults.
func New(style styles.Style, shape GridShape) (*Figure, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}

	dims, err := ComputeDimensions(shape)
	if err != nil {
		return nil, err
	}

	panels := make([][]*Panel, shape.Rows)
	for r := range panels {
		panels[r] = make([]*Panel, shape.Cols)
		for c := range panels[r] {
			panels[r][c] = newPanel(style)
		}
	}

	return &Figure{
		style:  style,
		shape:  shape,
		dims:   dims,
		panels: panels,
	}, nil
}

// Style returns the figure's style.
func (f *Figure) Style() styles.Style { return f.style }

// Shape returns the figure's grid shape.
func (f *Figure) Shape() GridShape { return f.shape }

// Dims returns the figure's physical dimensions in centimeters.
func (f *Figure) Dims() Dimensions { return f.dims }

// Lengths returns the figure's physical size in engine length units.
func (f *Figure) Lengths() (w, h vg.Length) {
	return vg.Length(f.dims.Width) * vg.Centimeter, vg.Length(f.dims.Height) * vg.Centimeter
}

// Panel returns the panel at (row, col), zero-indexed.
func (f *Figure) Panel(row, col int) (*Panel, error) {
	if row < 0 || row >= f.shape.Rows || col < 0 || col >= f.shape.Cols {
		return nil, errInvalidPanel(row, col, f.shape)
	}
	return f.panels[row][col], nil
}

// Panels returns all panels in row-major order.
func (f *Figure) Panels() []*Panel {
	out := make([]*Panel, 0, f.shape.Panels())
	for _, row := range f.panels {
		out = append(out, row...)
	}
	return out
}

// Draw renders every panel into dc, laid out on the figure's grid with the
// style's margins and inter-panel spacing.
func (f *Figure) Draw(dc draw.Canvas) {
	plots := make([][]*plot.Plot, f.shape.Rows)
	for r, row := range f.panels {
		plots[r] = make([]*plot.Plot, f.shape.Cols)
		for c, p := range row {
			plots[r][c] = p.plot
		}
	}

	canvases := plot.Align(plots, f.tiles(), dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
}

// tiles converts the style's fractional margins into absolute pad lengths
// for the engine's grid layout.
func (f *Figure) tiles() draw.Tiles {
	w, h := f.Lengths()
	m := f.style.Margins

	return draw.Tiles{
		Rows:      f.shape.Rows,
		Cols:      f.shape.Cols,
		PadLeft:   vg.Length(m.Left) * w,
		PadRight:  vg.Length(m.Right) * w,
		PadBottom: vg.Length(m.Bottom) * h,
		PadTop:    vg.Length(m.Top) * h,
		PadX:      vg.Length(m.WSpace) * w / vg.Length(f.shape.Cols),
		PadY:      vg.Length(m.HSpace) * h / vg.Length(f.shape.Rows),
	}
}
