package figure

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure/styles"
	"github.com/pubkit/pubfig/pkg/palette"
)

// Default axis labels. Every panel carries labels even before the caller
// sets its own, so an unfinished figure still reads as a figure.
const (
	defaultXLabel = "$x$, sec"
	defaultYLabel = "$y$, rad"
)

// Panel is a single drawing surface within a figure. It wraps one engine
// plot, pre-decorated with the figure's typography, a dotted low-alpha
// grid, a zero-position axis guide, and default labels.
type Panel struct {
	plot   *plot.Plot
	style  styles.Style
	series int
}

func newPanel(style styles.Style) *Panel {
	p := plot.New()

	variant := font.Variant(style.FontVariant)
	applyFont := func(ts *draw.TextStyle, size float64) {
		ts.Font.Variant = variant
		ts.Font.Size = vg.Points(size)
	}
	applyFont(&p.Title.TextStyle, style.TitleSize)
	applyFont(&p.X.Label.TextStyle, style.AxisLabelSize)
	applyFont(&p.Y.Label.TextStyle, style.AxisLabelSize)
	applyFont(&p.X.Tick.Label, style.TickSize)
	applyFont(&p.Y.Tick.Label, style.TickSize)
	applyFont(&p.Legend.TextStyle, style.LegendSize)

	grid := plotter.NewGrid()
	grid.Vertical.Color = palette.GridLine
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	grid.Horizontal.Color = palette.GridLine
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(grid)

	// The engine draws bottom/left spines only; the guide pins a y-axis
	// line to x=0 whenever the data range spans it.
	p.Add(zeroAxis{LineStyle: p.X.LineStyle})

	p.X.Label.Text = defaultXLabel
	p.Y.Label.Text = defaultYLabel

	return &Panel{plot: p, style: style}
}

// SetTitle sets the panel title.
func (p *Panel) SetTitle(title string) { p.plot.Title.Text = title }

// SetXLabel sets the x-axis label to "$symbol$, unit". An empty symbol
// leaves the current label in place.
func (p *Panel) SetXLabel(symbol, unit string) {
	if symbol == "" {
		return
	}
	p.plot.X.Label.Text = formatLabel(symbol, unit)
}

// SetYLabel sets the y-axis label to "$symbol$, unit". An empty symbol
// leaves the current label in place.
func (p *Panel) SetYLabel(symbol, unit string) {
	if symbol == "" {
		return
	}
	p.plot.Y.Label.Text = formatLabel(symbol, unit)
}

// XLabel returns the current x-axis label.
func (p *Panel) XLabel() string { return p.plot.X.Label.Text }

// YLabel returns the current y-axis label.
func (p *Panel) YLabel() string { return p.plot.Y.Label.Text }

// Line plots ys against xs as a line in the next palette color. A non-empty
// name adds a legend entry.
func (p *Panel) Line(name string, xs, ys []float64) error {
	pts, err := points(xs, ys)
	if err != nil {
		return err
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "line %q", name)
	}
	line.LineStyle.Color = p.nextColor()
	line.LineStyle.Width = vg.Points(p.style.LineWidth)

	p.plot.Add(line)
	if name != "" {
		p.plot.Legend.Add(name, line)
	}
	return nil
}

// Scatter plots ys against xs as points in the next palette color. A
// non-empty name adds a legend entry.
func (p *Panel) Scatter(name string, xs, ys []float64) error {
	pts, err := points(xs, ys)
	if err != nil {
		return err
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "scatter %q", name)
	}
	scatter.GlyphStyle.Color = p.nextColor()
	scatter.GlyphStyle.Radius = vg.Points(1.5 * p.style.LineWidth)

	p.plot.Add(scatter)
	if name != "" {
		p.plot.Legend.Add(name, scatter)
	}
	return nil
}

// Plot exposes the underlying engine plot for decoration this package does
// not cover (ranges, tickers, extra plotters).
func (p *Panel) Plot() *plot.Plot { return p.plot }

// SetPaletteOffset advances the panel's color cycle to start at index i.
// Sibling panels in one figure can use their panel index here so each
// panel's first series gets a distinct color.
func (p *Panel) SetPaletteOffset(i int) { p.series = i }

func (p *Panel) nextColor() color.Color {
	c := palette.Color(p.series)
	p.series++
	return c
}

func formatLabel(symbol, unit string) string {
	if unit == "" {
		return fmt.Sprintf("$%s$", symbol)
	}
	return fmt.Sprintf("$%s$, %s", symbol, unit)
}

func points(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "series length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

func errInvalidPanel(row, col int, shape GridShape) error {
	return errors.New(errors.ErrCodeInvalidGrid, "panel (%d,%d) out of range for %s grid", row, col, shape)
}

// zeroAxis draws a vertical guide at data x=0, standing in for a left
// spine pinned to the zero position. It draws nothing when the x-range
// does not span zero.
type zeroAxis struct {
	draw.LineStyle
}

func (z zeroAxis) Plot(c draw.Canvas, plt *plot.Plot) {
	if plt.X.Min >= 0 || plt.X.Max <= 0 {
		return
	}
	trX, _ := plt.Transforms(&c)
	x := trX(0)
	c.StrokeLine2(z.LineStyle, x, c.Min.Y, x, c.Max.Y)
}
