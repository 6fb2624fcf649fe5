package tui

import "archglobe/internal/globe"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

const (
	navHeight    = 1
	headerHeight = 2
	footerHeight = 2
	sidebarWidth = 30
)

// mapLayout is the Map page geometry in screen cells. View and the mouse
// handler both use it, so hit tests always match what is drawn.
type mapLayout struct {
	search   rect
	category rect
	options  rect // open category menu, drawn over the list
	list     rect
	globe    rect
}

func (m Model) mapLayout() mapLayout {
	top := navHeight + headerHeight
	bodyH := max(4, m.height-top-footerHeight)
	return mapLayout{
		search:   rect{0, top, sidebarWidth, 1},
		category: rect{0, top + 1, sidebarWidth, 1},
		options:  rect{0, top + 2, sidebarWidth, len(m.category.options)},
		list:     rect{0, top + 3, sidebarWidth, max(1, bodyH-3)},
		globe:    rect{sidebarWidth + 1, top, max(10, m.width-sidebarWidth-1), bodyH},
	}
}

// viewport is the globe area as the engine sees it.
func (m Model) viewport() globe.Viewport {
	g := m.mapLayout().globe
	return globe.Viewport{Width: g.w, Height: g.h}
}

// contentHeight is the space between the nav bar and the footer.
func (m Model) contentHeight() int {
	return max(4, m.height-navHeight-footerHeight)
}
