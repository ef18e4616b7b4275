package styles

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pubkit/pubfig/pkg/errors"
)

// Preamble is the default LaTeX preamble attached to TeX output. It enables
// English and Russian text plus Cyrillic-capable font and input encodings.
const Preamble = `\usepackage[english,russian]{babel}
\usepackage[T2A]{fontenc}
\usepackage[utf8]{inputenc}`

// Margins define figure whitespace as fractions of the figure size.
// Left/Right are fractions of the width, Bottom/Top of the height.
// WSpace/HSpace are the horizontal and vertical gaps between panels,
// as fractions of one panel's width and height.
type Margins struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
	WSpace float64 `toml:"wspace"`
	HSpace float64 `toml:"hspace"`
}

// Style is an immutable typographic configuration for a figure. A Style is
// supplied explicitly to figure construction; there is no process-wide
// default that mutates behind the caller's back.
//
// All font sizes are in printer's points.
type Style struct {
	FontVariant   string  `toml:"font_variant"`    // engine font variant: "Serif", "Sans", "Mono"
	BaseSize      float64 `toml:"base_size"`       // fallback size for text elements
	AxisLabelSize float64 `toml:"axis_label_size"` // x/y axis labels
	LegendSize    float64 `toml:"legend_size"`     // legend entries
	TickSize      float64 `toml:"tick_size"`       // tick labels
	TitleSize     float64 `toml:"title_size"`      // panel titles
	LineWidth     float64 `toml:"line_width"`      // series line width
	LaTeXPreamble string  `toml:"latex_preamble"`  // preamble for TeX output
	Margins       Margins `toml:"margins"`
}

// Default returns the publication style: 12pt serif text, 8pt legend and
// tick labels, 1pt lines, and margins tuned for a two-column page.
func Default() Style {
	return Style{
		FontVariant:   "Serif",
		BaseSize:      12,
		AxisLabelSize: 12,
		LegendSize:    8,
		TickSize:      8,
		TitleSize:     12,
		LineWidth:     1.0,
		LaTeXPreamble: Preamble,
		Margins: Margins{
			Left:   0.15,
			Right:  0.05,
			Bottom: 0.10,
			Top:    0.05,
			WSpace: 0.3,
			HSpace: 0.3,
		},
	}
}

// Scale returns a copy of the style with all font sizes multiplied by k.
// Line width and margins are unchanged.
func (s Style) Scale(k float64) Style {
	s.BaseSize *= k
	s.AxisLabelSize *= k
	s.LegendSize *= k
	s.TickSize *= k
	s.TitleSize *= k
	return s
}

// Validate checks that the style describes a drawable configuration.
func (s Style) Validate() error {
	switch s.FontVariant {
	case "Serif", "Sans", "Mono":
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "font variant %q: want Serif, Sans, or Mono", s.FontVariant)
	}

	sizes := []struct {
		name string
		v    float64
	}{
		{"base_size", s.BaseSize},
		{"axis_label_size", s.AxisLabelSize},
		{"legend_size", s.LegendSize},
		{"tick_size", s.TickSize},
		{"title_size", s.TitleSize},
	}
	for _, sz := range sizes {
		if sz.v <= 0 {
			return errors.New(errors.ErrCodeInvalidStyle, "%s must be positive, got %g", sz.name, sz.v)
		}
	}

	if s.LineWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "line_width must be positive, got %g", s.LineWidth)
	}

	m := s.Margins
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"left", m.Left}, {"right", m.Right}, {"bottom", m.Bottom}, {"top", m.Top},
	} {
		if f.v < 0 || f.v >= 0.5 {
			return errors.New(errors.ErrCodeInvalidStyle, "margin %s must be in [0, 0.5), got %g", f.name, f.v)
		}
	}
	if m.WSpace < 0 || m.HSpace < 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "panel spacing must be non-negative")
	}

	return nil
}

// Load reads a style from a TOML file. Fields absent from the file keep
// their Default values, so a config may override only what it cares about.
func Load(path string) (Style, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style %s", path)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Write encodes the style as TOML.
func (s Style) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode style")
	}
	return nil
}

// Save writes the style as a TOML file.
func (s Style) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return s.Write(f)
}
