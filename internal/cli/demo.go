package cli

import (
	"math"

	"github.com/pubkit/pubfig/pkg/figure"
)

// demoSeries samples the demo waveform y = sin(x)·cos(2x) on [0, 10].
func demoSeries(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := 10 * float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = math.Sin(x) * math.Cos(2*x)
	}
	return xs, ys
}

// fillDemo plots the demo waveform into every panel of the figure, one
// palette color per panel, with time/amplitude labels.
func fillDemo(fig *figure.Figure) error {
	xs, ys := demoSeries(100)
	for i, p := range fig.Panels() {
		p.SetPaletteOffset(i)
		if err := p.Line("", xs, ys); err != nil {
			return err
		}
		p.SetXLabel("t", "сек")
		p.SetYLabel("A", "рад")
	}
	return nil
}
