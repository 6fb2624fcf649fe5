package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"archglobe/internal/catalog"
)

func newCaseTable(c *catalog.Catalog) table.Model {
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Building", Width: 24},
		{Title: "Category", Width: 30},
		{Title: "Location", Width: 18},
		{Title: "Details", Width: 28},
	}
	all := c.All()
	rows := make([]table.Row, 0, len(all))
	for i, b := range all {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			b.Name,
			b.Category.Label(),
			formatLocation(b),
			b.Details,
		})
	}
	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

func formatLocation(b *catalog.Building) string {
	return fmt.Sprintf("%.4f, %.4f", b.Lat, b.Lon)
}

func tableStyles(st styles) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(st.palette.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(st.palette.Card).
		Background(st.palette.Primary).
		Bold(false)
	return s
}

// caseAt returns the building under the table cursor.
func (m Model) caseAt() *catalog.Building {
	all := m.catalog.All()
	i := m.tbl.Cursor()
	if i < 0 || i >= len(all) {
		return nil
	}
	return all[i]
}

// focusCase moves the table cursor to b.
func (m *Model) focusCase(b *catalog.Building) {
	for i, c := range m.catalog.All() {
		if c == b {
			m.tbl.SetCursor(i)
			return
		}
	}
}
