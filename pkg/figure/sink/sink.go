package sink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatTeX Format = "tex"
)

// Defaults for the save surface.
const (
	DefaultFilename = "plot.pdf"
	DefaultDPI      = 50
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatPNG, FormatSVG, FormatTeX}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPDF, FormatPNG, FormatSVG, FormatTeX:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "format %q: want pdf, png, svg, or tex", s)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "path %q has no extension to derive a format from", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.New(errors.ErrCodeInvalidFormat, "path %q: unsupported extension .%s", path, ext)
	}
	return f, nil
}

// Render produces the figure in the given format.
func Render(fig *figure.Figure, format Format, opts ...PNGOption) ([]byte, error) {
	switch format {
	case FormatPDF:
		return RenderPDF(fig)
	case FormatPNG:
		return RenderPNG(fig, opts...)
	case FormatSVG:
		return RenderSVG(fig)
	case FormatTeX:
		return RenderTeX(fig)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// Save renders the figure into the format implied by the path's extension
// and writes it to disk. PNG options apply only to PNG output.
func Save(fig *figure.Figure, path string, opts ...PNGOption) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Render(fig, format, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
