// Package palette provides the qualitative color cycle used for plotted
// series. The colors are chosen for legibility on a printed two-column page
// and for distinguishability when a figure holds many series.
package palette

import (
	"image/color"

	"github.com/pubkit/pubfig/pkg/errors"
)

// Qualitative is the default series color cycle.
var Qualitative = []string{
	"#1b9e77", // teal
	"#d95f02", // orange
	"#7570b3", // lavender
	"#e7298a", // pink
	"#66a61e", // lime
	"#e6ab02", // gold
	"#a6761d", // ochre
	"#666666", // medium gray
	"#e41a1c", // vermillion
	"#377eb8", // steel blue
	"#4daf4a", // green
	"#984ea3", // purple
	"#ff7f00", // dark orange
	"#ffff33", // yellow
	"#a65628", // brown
	"#f781bf", // light pink
}

// GridLine is the color of panel grid lines, drawn at half opacity.
var GridLine = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0x80}

// Color returns the i-th color of the qualitative cycle, wrapping around
// when i exceeds the cycle length. Negative indices wrap the same way.
func Color(i int) color.Color {
	n := len(Qualitative)
	i = ((i % n) + n) % n
	c, _ := Parse(Qualitative[i])
	return c
}

// Parse converts a "#rrggbb" hex string to a color.
func Parse(hex string) (color.Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "color %q: want #rrggbb", hex)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[1+2*i])
		lo, ok2 := hexDigit(hex[2+2*i])
		if !ok1 || !ok2 {
			return nil, errors.New(errors.ErrCodeInvalidStyle, "color %q: invalid hex digit", hex)
		}
		rgb[i] = hi<<4 | lo
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
