package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
)

// RenderSVG renders the figure as an SVG document.
func RenderSVG(fig *figure.Figure) ([]byte, error) {
	w, h := fig.Lengths()
	c := vgsvg.New(w, h)

	fig.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode svg")
	}
	return buf.Bytes(), nil
}
