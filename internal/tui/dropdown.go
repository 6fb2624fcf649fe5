package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"archglobe/internal/catalog"
)

// dropdown is the category menu: All Categories plus the enumeration.
type dropdown struct {
	options []catalog.Category
	index   int
	cursor  int
	open    bool
}

func newDropdown() dropdown {
	return dropdown{options: append([]catalog.Category{catalog.All}, catalog.Categories()...)}
}

func (d dropdown) Selected() catalog.Category { return d.options[d.index] }

func (d *dropdown) Toggle() {
	d.open = !d.open
	d.cursor = d.index
}

func (d *dropdown) Close() { d.open = false }

func (d *dropdown) Move(delta int) {
	n := len(d.options)
	d.cursor = ((d.cursor+delta)%n + n) % n
}

// Choose picks option i and closes the menu. It reports whether the
// selection changed.
func (d *dropdown) Choose(i int) bool {
	if i < 0 || i >= len(d.options) {
		return false
	}
	d.open = false
	if i == d.index {
		return false
	}
	d.index = i
	d.cursor = i
	return true
}

// Header is the closed menu line.
func (d dropdown) Header(st styles, width int, focused bool) string {
	arrow := "▾"
	if d.open {
		arrow = "▴"
	}
	line := arrow + " " + d.Selected().Label()
	s := st.dim
	if focused {
		s = st.focused
	}
	return s.Width(width).MaxWidth(width).Render(line)
}

// Options renders the open menu, one line per option.
func (d dropdown) Options(st styles, width int) string {
	lines := make([]string, len(d.options))
	for i, c := range d.options {
		prefix := "  "
		if i == d.index {
			prefix = "✓ "
		}
		s := lipgloss.NewStyle()
		if i == d.cursor {
			s = st.focused
		}
		lines[i] = s.Width(width).MaxWidth(width).Render(prefix + c.Label())
	}
	return strings.Join(lines, "\n")
}
