package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	dpi int
}

// WithDPI sets the raster resolution (default 50 DPI).
func WithDPI(dpi int) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// RenderPNG renders the figure as a PNG image.
func RenderPNG(fig *figure.Figure, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if err := errors.ValidateDPI(r.dpi); err != nil {
		return nil, err
	}

	w, h := fig.Lengths()
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.dpi))
	fig.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}
