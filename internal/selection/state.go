// Package selection holds what the user has picked, hovered and filtered.
package selection

import (
	"archglobe/internal/catalog"
)

// State is the single source of truth for the selected and hovered
// building, the pointer's screen position and the list filter. All
// building pointers it hands out belong to its catalog.
type State struct {
	catalog *catalog.Catalog

	selected *catalog.Building
	hovered  *catalog.Building
	px, py   float64
	filter   catalog.Filter

	onSelect func(prev, next *catalog.Building)
}

func New(c *catalog.Catalog) *State {
	return &State{catalog: c, filter: catalog.Filter{Category: catalog.All}}
}

func (s *State) Catalog() *catalog.Catalog { return s.catalog }

// OnSelect registers a callback run whenever the selection changes identity.
func (s *State) OnSelect(fn func(prev, next *catalog.Building)) { s.onSelect = fn }

func (s *State) Selected() *catalog.Building { return s.selected }

// SetSelected selects b, or clears the selection when b is nil. b is
// resolved by ID so that copies from outside the catalog still select the
// catalog's own record; unknown buildings clear the selection.
func (s *State) SetSelected(b *catalog.Building) {
	var next *catalog.Building
	if b != nil {
		next = s.catalog.ByID(b.ID)
	}
	if next == s.selected {
		return
	}
	prev := s.selected
	s.selected = next
	if s.onSelect != nil {
		s.onSelect(prev, next)
	}
}

// Close clears the selection, which closes the detail dialog.
func (s *State) Close() { s.SetSelected(nil) }

func (s *State) DetailOpen() bool { return s.selected != nil }

func (s *State) Hovered() *catalog.Building { return s.hovered }

func (s *State) SetHovered(b *catalog.Building) { s.hovered = b }

// SetPointer stores the pointer position in cells, origin top-left.
func (s *State) SetPointer(x, y float64) { s.px, s.py = x, y }

func (s *State) Pointer() (x, y float64) { return s.px, s.py }

func (s *State) SetSearchTerm(term string) { s.filter.Search = term }

func (s *State) SearchTerm() string { return s.filter.Search }

// SetCategoryFilter sets the category predicate; the empty category means all.
func (s *State) SetCategoryFilter(c catalog.Category) {
	if c == "" {
		c = catalog.All
	}
	s.filter.Category = c
}

func (s *State) CategoryFilter() catalog.Category { return s.filter.Category }

func (s *State) Filter() catalog.Filter { return s.filter }

// Visible is the filtered building list in catalog order.
func (s *State) Visible() []*catalog.Building { return s.catalog.Filter(s.filter) }
