package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"archglobe/internal/catalog"
)

type buildingItem struct {
	b *catalog.Building
}

func (i buildingItem) Title() string       { return i.b.Name }
func (i buildingItem) Description() string { return i.b.Category.Label() }
func (i buildingItem) FilterValue() string { return i.b.Name }

func newBuildingList() list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	l := list.New(nil, d, 0, 0)
	l.Title = "Buildings"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	return l
}

// listHeaderRows is the title line plus its bottom padding.
const listHeaderRows = 2

// refreshList rebuilds the list from the filtered catalog.
func (m *Model) refreshList() {
	visible := m.state.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, b := range visible {
		items = append(items, buildingItem{b: b})
	}
	m.l.SetItems(items)
	if m.l.Index() >= len(items) && len(items) > 0 {
		m.l.Select(len(items) - 1)
	}
	if len(items) == 0 {
		m.status = "no buildings match"
	} else {
		m.status = fmt.Sprintf("%d of %d buildings", len(items), m.catalog.Len())
	}
}

// listItemAt maps a row inside the list panel to an item index.
func (m Model) listItemAt(row int) (int, bool) {
	i := row - listHeaderRows
	if i < 0 || i >= m.l.Paginator.PerPage {
		return 0, false
	}
	idx := m.l.Paginator.Page*m.l.Paginator.PerPage + i
	if idx >= len(m.l.VisibleItems()) {
		return 0, false
	}
	return idx, true
}

func (m Model) selectedItem() (*catalog.Building, bool) {
	it, ok := m.l.SelectedItem().(buildingItem)
	if !ok {
		return nil, false
	}
	return it.b, true
}
