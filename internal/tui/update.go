package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"archglobe/internal/catalog"
)

const (
	keyRotateStep  = 0.15
	dragRotateX    = 0.06
	dragRotateY    = 0.12
	zoomInFactor   = 1 / 1.2
	zoomOutFactor  = 1.2
	wheelInFactor  = 0.9
	wheelOutFactor = 1 / 0.9
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case frameMsg:
		return m.stepFrame(msg)
	case textureMsg:
		m.resolveTexture(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	// cursor blink and friends
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) resize() {
	lay := m.mapLayout()
	m.l.SetSize(lay.list.w, lay.list.h)
	m.search.Width = sidebarWidth - len(m.search.Prompt) - 1
	m.tbl.SetHeight(max(3, m.contentHeight()-4))
	m.tbl.SetWidth(max(20, m.width-6))
}

// stepFrame advances the controls and runs the interaction engine once.
func (m Model) stepFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.mounted {
		return m, nil
	}
	m.controls.Update()
	vp := m.viewport()
	if vp.Width > 0 && vp.Height > 0 {
		f := m.engine.Step(msg.at, m.camera, m.pointer, vp)
		if f.Selected != nil {
			m.status = "selected: " + f.Selected.Name
		}
		m.hoverLat, m.hoverLon, m.hoverHasGeo = pointerGeo(m.camera, m.pointer, vp)
	}
	return m, m.tick()
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	if f != focusCategory {
		m.category.Close()
	}
	if f == focusSearch {
		return m.search.Focus()
	}
	m.search.Blur()
	return nil
}

func (m *Model) cycleFocus(forward bool) tea.Cmd {
	step := 1
	if !forward {
		step = int(focusCount) - 1
	}
	return m.setFocus(focus((int(m.focus) + step) % int(focusCount)))
}

func (m *Model) applySearch() {
	term := m.search.Value()
	if term == m.state.SearchTerm() {
		return
	}
	m.state.SetSearchTerm(term)
	m.refreshList()
}

func (m *Model) applyCategory() {
	c := m.category.Selected()
	m.state.SetCategoryFilter(c)
	m.refreshList()
	m.log.Debug().Str("category", string(c)).Int("visible", len(m.l.Items())).Msg("category filter")
}

func (m *Model) selectBuilding(b *catalog.Building) {
	if b == nil {
		return
	}
	m.state.SetSelected(b)
	m.status = "selected: " + b.Name
}

func (m *Model) closeDialog() {
	m.state.Close()
	m.status = "Map"
}

// openLecture follows the dialog's "View Related Lecture" link.
func (m *Model) openLecture() tea.Cmd {
	b := m.state.Selected()
	if b == nil {
		return nil
	}
	m.state.Close()
	m.focusCase(b)
	cmd := m.setPage(PageCaseStudies)
	m.status = "related lecture: " + b.Name
	return cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return m, tea.Quit
	}

	if m.page == PageMap && m.focus == focusSearch {
		switch k {
		case "esc":
			return m, m.setFocus(focusGlobe)
		case "enter":
			return m, m.setFocus(focusList)
		case "shift+tab":
			return m, m.cycleFocus(false)
		case "tab":
			if s := m.search.CurrentSuggestion(); s == "" || s == m.search.Value() {
				return m, m.cycleFocus(true)
			}
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.applySearch()
		return m, cmd
	}

	if m.page == PageMap && m.state.DetailOpen() {
		switch k {
		case "esc", "backspace":
			m.closeDialog()
			return m, nil
		case "enter", "l":
			return m, m.openLecture()
		}
	}

	switch k {
	case "q":
		return m, tea.Quit
	case "1":
		return m, m.setPage(PageHome)
	case "2":
		return m, m.setPage(PageCaseStudies)
	case "3":
		return m, m.setPage(PageMap)
	case "ctrl+right":
		return m, m.setPage((m.page + 1) % 3)
	case "ctrl+left":
		return m, m.setPage((m.page + 2) % 3)
	case "t":
		m.theme.Toggle()
		m.status = fmt.Sprintf("theme: %s", map[bool]string{true: "dark", false: "light"}[m.theme.Dark()])
		return m, nil
	case "h", "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	}

	switch m.page {
	case PageHome:
		if k == "enter" {
			return m, m.setPage(PageMap)
		}
	case PageCaseStudies:
		return m.caseKey(msg)
	case PageMap:
		return m.mapKey(msg)
	}
	return m, nil
}

func (m Model) caseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		b := m.caseAt()
		if b == nil {
			return m, nil
		}
		m.selectBuilding(b)
		return m, m.setPage(PageMap)
	case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) mapKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch k {
	case "tab":
		return m, m.cycleFocus(true)
	case "shift+tab":
		return m, m.cycleFocus(false)
	case "/":
		return m, m.setFocus(focusSearch)
	case "esc":
		if m.category.open {
			m.category.Close()
			return m, nil
		}
		return m, m.setFocus(focusGlobe)
	}

	switch m.focus {
	case focusGlobe:
		switch k {
		case "left":
			m.controls.Rotate(-keyRotateStep, 0)
		case "right":
			m.controls.Rotate(keyRotateStep, 0)
		case "up":
			m.controls.Rotate(0, keyRotateStep)
		case "down":
			m.controls.Rotate(0, -keyRotateStep)
		case "+", "=":
			m.camera.Zoom(zoomInFactor)
			m.status = fmt.Sprintf("distance: %.1f", m.camera.Distance)
		case "-", "_":
			m.camera.Zoom(zoomOutFactor)
			m.status = fmt.Sprintf("distance: %.1f", m.camera.Distance)
		case "r":
			m.controls.Reset()
			m.status = "view reset"
		}
	case focusCategory:
		switch k {
		case "up", "k":
			if m.category.open {
				m.category.Move(-1)
			}
		case "down", "j":
			if m.category.open {
				m.category.Move(1)
			} else {
				m.category.Toggle()
			}
		case "enter", " ":
			if !m.category.open {
				m.category.Toggle()
			} else if m.category.Choose(m.category.cursor) {
				m.applyCategory()
			}
		}
	case focusList:
		switch k {
		case "enter":
			if b, ok := m.selectedItem(); ok {
				m.selectBuilding(b)
			}
		case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if press && msg.Y < navHeight {
		if p, ok := m.navHit(msg.X); ok {
			return m, m.setPage(p)
		}
		if m.themeHit(msg.X) {
			m.theme.Toggle()
		}
		return m, nil
	}

	switch m.page {
	case PageCaseStudies:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.tbl.MoveUp(1)
		case tea.MouseButtonWheelDown:
			m.tbl.MoveDown(1)
		}
		return m, nil
	case PageMap:
		return m.mapMouse(msg)
	}
	return m, nil
}

func (m Model) mapMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lay := m.mapLayout()
	g := lay.globe
	x, y := msg.X, msg.Y
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	// the dialog is modal
	if m.state.DetailOpen() {
		if !press {
			return m, nil
		}
		d, _ := m.dialog()
		switch {
		case !d.r.contains(x, y):
			m.closeDialog()
		case d.hasButton && y == d.button:
			return m, m.openLecture()
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		up := msg.Button == tea.MouseButtonWheelUp
		switch {
		case g.contains(x, y):
			if up {
				m.camera.Zoom(wheelInFactor)
			} else {
				m.camera.Zoom(wheelOutFactor)
			}
		case lay.list.contains(x, y):
			if up {
				m.l.CursorUp()
			} else {
				m.l.CursorDown()
			}
		}
		return m, nil

	case press:
		var cmd tea.Cmd
		switch {
		case lay.search.contains(x, y):
			cmd = m.setFocus(focusSearch)
		case lay.category.contains(x, y):
			m.setFocus(focusCategory)
			m.category.Toggle()
		case m.category.open && lay.options.contains(x, y):
			if m.category.Choose(y - lay.options.y) {
				m.applyCategory()
			}
		case lay.list.contains(x, y):
			m.setFocus(focusList)
			if idx, ok := m.listItemAt(y - lay.list.y); ok {
				m.l.Select(idx)
				if b, ok := m.selectedItem(); ok {
					m.selectBuilding(b)
				}
			}
		case g.contains(x, y):
			m.setFocus(focusGlobe)
			m.pointer = m.viewport().NDC(x-g.x, y-g.y)
			m.drag = dragState{active: true, x: x, y: y}
		}
		return m, cmd

	case msg.Action == tea.MouseActionMotion:
		if g.contains(x, y) {
			m.pointer = m.viewport().NDC(x-g.x, y-g.y)
		}
		if m.drag.active && msg.Button == tea.MouseButtonLeft {
			dx, dy := x-m.drag.x, y-m.drag.y
			if abs(dx)+abs(dy) > 0 {
				m.drag.moved = true
				m.controls.Rotate(-float64(dx)*dragRotateX, float64(dy)*dragRotateY)
				m.drag.x, m.drag.y = x, y
			}
		}
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if m.drag.active && !m.drag.moved && g.contains(x, y) && m.mounted {
			m.pointer = m.viewport().NDC(x-g.x, y-g.y)
			m.engine.Click().Arm(m.now())
		}
		m.drag = dragState{}
		return m, nil
	}
	return m, nil
}
