package tui

import (
	"github.com/charmbracelet/lipgloss"

	"archglobe/internal/theme"
)

// styles are rebuilt from the palette whenever the theme toggles.
type styles struct {
	palette theme.Palette

	app       lipgloss.Style
	box       lipgloss.Style
	title     lipgloss.Style
	dim       lipgloss.Style
	brand     lipgloss.Style
	navItem   lipgloss.Style
	navActive lipgloss.Style
	focused   lipgloss.Style
	tooltip   lipgloss.Style
	dialog    lipgloss.Style
	label     lipgloss.Style
	button    lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		palette: p,

		app:       lipgloss.NewStyle().Foreground(p.Foreground),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		title:     lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		dim:       lipgloss.NewStyle().Foreground(p.Muted),
		brand:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		navItem:   lipgloss.NewStyle().Foreground(p.Foreground).Padding(0, 1),
		navActive: lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true).Padding(0, 1),
		focused:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		tooltip:   lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Card).Padding(0, 1),
		dialog:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Background(p.Card).Padding(0, 1),
		label:     lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		button:    lipgloss.NewStyle().Foreground(p.Card).Background(p.Primary).Padding(0, 1),
	}
}
