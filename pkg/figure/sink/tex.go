package sink

import (
	"bytes"

	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgtex"

	"github.com/pubkit/pubfig/pkg/errors"
	"github.com/pubkit/pubfig/pkg/figure"
)

// RenderTeX renders the figure as a complete LaTeX document: a pgf picture
// wrapped in a preamble from the figure's style. Math-mode label text
// ("$t$, sec") reaches LaTeX verbatim here, so this is the sink that gets
// true typeset output; compile with pdflatex or lualatex.
func RenderTeX(fig *figure.Figure) ([]byte, error) {
	w, h := fig.Lengths()
	c := vgtex.New(w, h)

	fig.Draw(draw.New(c))

	var pic bytes.Buffer
	if _, err := c.WriteTo(&pic); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode tex")
	}

	var buf bytes.Buffer
	buf.WriteString("\\documentclass{article}\n")
	buf.WriteString("\\usepackage{pgf}\n")
	if p := fig.Style().LaTeXPreamble; p != "" {
		buf.WriteString(p)
		buf.WriteString("\n")
	}
	buf.WriteString("\\begin{document}\n\\thispagestyle{empty}\n")
	buf.Write(pic.Bytes())
	buf.WriteString("\\end{document}\n")

	return buf.Bytes(), nil
}
