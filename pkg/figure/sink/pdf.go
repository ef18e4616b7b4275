package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
)

// RenderPDF renders the figure as a PDF document.
func RenderPDF(fig *figure.Figure) ([]byte, error) {
	w, h := fig.Lengths()
	c := vgpdf.New(w, h)
	c.EmbedFonts(true)

	fig.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode pdf")
	}
	return buf.Bytes(), nil
}
