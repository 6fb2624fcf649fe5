package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"archglobe/internal/catalog"
	"archglobe/internal/globe"
)

const (
	brand     = "ENGS 002"
	copyright = "Copyright © 2025 | Engineering, Architecture, and Building Technology"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	st := *m.styles
	contentWidth := max(10, m.width)

	var body string
	switch m.page {
	case PageHome:
		body = m.homeView(st)
	case PageCaseStudies:
		body = m.caseView(st)
	case PageMap:
		body = m.mapView(st)
	}
	body = lipgloss.NewStyle().Width(contentWidth).Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)

	ui := lipgloss.JoinVertical(lipgloss.Left, m.navView(st), body, m.footerView(st))
	return st.app.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) navSegments(st styles) []string {
	segs := []string{st.brand.Render(" " + brand + " ")}
	for i, name := range pageNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Page(i) == m.page {
			segs = append(segs, st.navActive.Render(label))
		} else {
			segs = append(segs, st.navItem.Render(label))
		}
	}
	return segs
}

func (m Model) navView(st styles) string {
	left := lipgloss.JoinHorizontal(lipgloss.Top, m.navSegments(st)...)
	icon := st.dim.Render(" " + m.theme.Icon() + " ")
	gap := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(icon))
	return left + strings.Repeat(" ", gap) + icon
}

// navHit maps a click on the nav bar to a page.
func (m Model) navHit(x int) (Page, bool) {
	segs := m.navSegments(*m.styles)
	pos := lipgloss.Width(segs[0])
	for i, s := range segs[1:] {
		w := lipgloss.Width(s)
		if x >= pos && x < pos+w {
			return Page(i), true
		}
		pos += w
	}
	return 0, false
}

// themeHit reports whether x is on the theme indicator.
func (m Model) themeHit(x int) bool {
	w := lipgloss.Width(" " + m.theme.Icon() + " ")
	return x >= m.width-w && x < m.width
}

func (m Model) footerView(st styles) string {
	contentWidth := max(10, m.width)
	status := st.dim.Render(" " + m.status + " ")
	coords := ""
	if m.page == PageMap && m.hoverHasGeo {
		coords = st.dim.Render(fmt.Sprintf("  lat=%.4f lon=%.4f  ", m.hoverLat, m.hoverLon))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp(st))
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	line := lipgloss.NewStyle().MaxWidth(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
	foot := st.dim.Width(contentWidth).Align(lipgloss.Center).Render(copyright)
	return lipgloss.JoinVertical(lipgloss.Left, line, foot)
}

func (m Model) renderHelp(st styles) string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{"1/2/3 pages", "t theme"}
	switch m.page {
	case PageHome:
		keys = append(keys, "Enter map")
	case PageCaseStudies:
		keys = append(keys, "↑↓ move", "Enter show on map")
	case PageMap:
		if m.state.DetailOpen() {
			keys = append(keys, "Enter lecture", "Esc close")
		} else {
			keys = append(keys, "drag/←→ rotate", "+/- zoom", "r reset", "Tab focus", "/ search")
		}
	}
	keys = append(keys, "h help", "q quit")
	return st.dim.Render("  " + strings.Join(keys, "  "))
}

func (m Model) homeView(st styles) string {
	text := []string{
		st.title.Render("Engineering, Architecture, and Building Technology"),
		"",
		"A tour of historic structures and the engineering behind them.",
		fmt.Sprintf("%d buildings across %d categories.", m.catalog.Len(), len(catalog.Categories())),
		"",
		st.dim.Render("Press 3 or Enter to open the interactive map, 2 for the case studies."),
	}
	box := st.box.Render(strings.Join(text, "\n"))
	return lipgloss.Place(max(10, m.width), m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) caseView(st styles) string {
	m.tbl.SetStyles(tableStyles(st))
	head := st.title.Render(" Case Studies ")
	return lipgloss.JoinVertical(lipgloss.Left, head, st.box.Render(m.tbl.View()))
}

func (m Model) mapView(st styles) string {
	lay := m.mapLayout()
	header := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render(" Interactive Building Map Directory"),
		st.dim.Render(" Click on markers to learn more about each building"),
	)

	var panel string
	if m.category.open {
		panel = m.category.Options(st, sidebarWidth)
	} else {
		panel = lipgloss.JoinVertical(lipgloss.Left, "", m.l.View())
	}
	in := m.search
	if m.focus == focusSearch {
		in.PromptStyle = st.focused
	} else {
		in.PromptStyle = st.dim
	}
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(sidebarWidth).MaxWidth(sidebarWidth).Render(in.View()),
		m.category.Header(st, sidebarWidth, m.focus == focusCategory),
		panel,
	)
	sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lay.globe.h).MaxHeight(lay.globe.h).Render(sidebar)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", m.globeView(st, lay.globe))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) globeView(st styles, g rect) string {
	switch m.surface.State() {
	case globe.SurfaceNotLoaded:
		return lipgloss.Place(g.w, g.h, lipgloss.Center, lipgloss.Center, st.dim.Render("loading surface..."))
	case globe.SurfaceFailed:
		return lipgloss.Place(g.w, g.h, lipgloss.Center, lipgloss.Center, st.dim.Render("surface unavailable"))
	}

	buf := renderGlobe(scene{
		camera:   m.camera,
		surface:  m.surface,
		markers:  m.registry.Markers(),
		hovered:  m.state.Hovered(),
		selected: m.state.Selected(),
		palette:  st.palette,
	}, g.w, g.h)

	var ovs []overlay
	if d, ok := m.dialog(); ok {
		ovs = append(ovs, newOverlay(d.r.x-g.x, d.r.y-g.y, d.box))
	} else if b := m.state.Hovered(); b != nil {
		px, py := m.state.Pointer()
		tip := st.tooltip.Render(b.Name + " · " + b.Category.Label())
		ovs = append(ovs, newOverlay(int(px)+1, int(py)+1, tip))
	}
	return buf.render(ovs...)
}

func dialogWidth(g rect) int { return min(54, g.w-4) }

func (m Model) renderDialog(st styles, b *catalog.Building, g rect) string {
	w := dialogWidth(g)
	lines := []string{
		st.title.Render(b.Name),
		st.label.Render("Category: ") + b.Category.Label(),
		st.label.Render("Location: ") + formatLocation(b),
	}
	if b.Image != "" {
		lines = append(lines, st.label.Render("Image: ")+b.Image)
	}
	lines = append(lines, "", b.Details, "", st.button.Render("View Related Lecture")+st.dim.Render("  esc close"))
	return st.dialog.Width(w).Render(strings.Join(lines, "\n"))
}

// dialogLayout is the detail dialog as drawn: the box clipped to the globe
// area, its screen rectangle and the row of the "View Related Lecture"
// button, which is lost when the box is clipped too short.
type dialogLayout struct {
	box       string
	r         rect
	button    int
	hasButton bool
}

// dialog lays out the dialog centred on the globe area.
func (m Model) dialog() (dialogLayout, bool) {
	b := m.state.Selected()
	if b == nil {
		return dialogLayout{}, false
	}
	g := m.mapLayout().globe
	full := m.renderDialog(*m.styles, b, g)
	fullH := lipgloss.Height(full)
	box := lipgloss.NewStyle().MaxWidth(g.w).MaxHeight(g.h).Render(full)
	w, h := lipgloss.Width(box), lipgloss.Height(box)

	d := dialogLayout{box: box, r: rect{g.x + (g.w-w)/2, g.y + (g.h-h)/2, w, h}}
	d.button = d.r.y + fullH - 2
	d.hasButton = fullH-2 < h
	return d, true
}
