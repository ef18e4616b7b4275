package figure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pubkit/pubfig/pkg/errors"
)

// GridShape is the (rows, columns) layout of subplot panels within one
// figure.
type GridShape struct {
	Rows int
	Cols int
}

// Validate rejects shapes with non-positive rows or columns. The sizing
// formula is undefined there, so such shapes fail loudly instead of
// propagating a numeric anomaly into the plotting engine.
func (g GridShape) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid shape %dx%d: rows and cols must be at least 1", g.Rows, g.Cols)
	}
	return nil
}

// Panels returns the number of panels in the grid.
func (g GridShape) Panels() int { return g.Rows * g.Cols }

// String formats the shape as "RxC".
func (g GridShape) String() string { return fmt.Sprintf("%dx%d", g.Rows, g.Cols) }

// ParseGridShape parses "RxC" (e.g. "2x3"). A bare integer "N" is read as
// N rows by one column.
func ParseGridShape(s string) (GridShape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return GridShape{}, errors.New(errors.ErrCodeInvalidGrid, "grid shape cannot be empty")
	}

	rows, cols, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		cols = "1"
	}

	r, err := strconv.Atoi(rows)
	if err != nil {
		return GridShape{}, errors.New(errors.ErrCodeInvalidGrid, "grid shape %q: bad row count %q", s, rows)
	}
	c, err := strconv.Atoi(cols)
	if err != nil {
		return GridShape{}, errors.New(errors.ErrCodeInvalidGrid, "grid shape %q: bad column count %q", s, cols)
	}

	g := GridShape{Rows: r, Cols: c}
	if err := g.Validate(); err != nil {
		return GridShape{}, err
	}
	return g, nil
}
