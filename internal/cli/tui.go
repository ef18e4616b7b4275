package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pubkit/pubfig/pkg/figure"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// shapeEntry is one row of the interactive shape picker.
type shapeEntry struct {
	shape figure.GridShape
	dims  figure.Dimensions
}

// shapePickerModel is the bubbletea model for interactive grid-shape
// selection. Each entry shows the physical size the sizing policy assigns,
// so the picker doubles as a preview of the aspect-ratio table.
type shapePickerModel struct {
	entries  []shapeEntry
	cursor   int
	selected *figure.GridShape
}

func newShapePickerModel() shapePickerModel {
	var entries []shapeEntry
	for rows := 1; rows <= 4; rows++ {
		for cols := 1; cols <= 4; cols++ {
			shape := figure.GridShape{Rows: rows, Cols: cols}
			dims, err := figure.ComputeDimensions(shape)
			if err != nil {
				continue
			}
			entries = append(entries, shapeEntry{shape: shape, dims: dims})
		}
	}
	return shapePickerModel{entries: entries}
}

func (m shapePickerModel) Init() tea.Cmd {
	return nil
}

func (m shapePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			shape := m.entries[m.cursor].shape
			m.selected = &shape
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m shapePickerModel) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Pick a grid shape"))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := fmt.Sprintf("%-5s  %.1f x %.1f cm", e.shape, e.dims.Width, e.dims.Height)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("up/down to move, enter to select, q to cancel"))
	b.WriteString("\n")
	return b.String()
}

// pickShape runs the interactive picker and returns the chosen shape.
// The second return is false when the user cancelled.
func pickShape() (figure.GridShape, bool, error) {
	final, err := tea.NewProgram(newShapePickerModel()).Run()
	if err != nil {
		return figure.GridShape{}, false, err
	}

	m, ok := final.(shapePickerModel)
	if !ok || m.selected == nil {
		return figure.GridShape{}, false, nil
	}
	return *m.selected, true, nil
}
