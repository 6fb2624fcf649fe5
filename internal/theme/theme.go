// Package theme holds the light/dark palettes and the current mode.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one colour scheme. Globe colours are hex strings because the
// renderer blends them before styling.
type Palette struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color

	Land       string
	LandShadow string
	Ocean      string
	Selected   string

	IsDark bool
}

func LightPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#dce0e5"),
		Card:       lipgloss.Color("#ffffff"),

		Land:       "#4d8c3a",
		LandShadow: "#1d3a17",
		Ocean:      "#2f6db5",
		Selected:   "#7C3AED",
	}
}

func DarkPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#E6E6E6"),
		Primary:    lipgloss.Color("#8BC34A"),
		Accent:     lipgloss.Color("#7C3AED"),
		Muted:      lipgloss.Color("#6B7280"),
		Border:     lipgloss.Color("#243141"),
		Card:       lipgloss.Color("#0F141A"),

		Land:       "#8BC34A",
		LandShadow: "#22331a",
		Ocean:      "#29434e",
		Selected:   "#ffd54f",
		IsDark:     true,
	}
}

// Theme is the current mode. It is passed explicitly to whoever renders;
// Subscribe lets them react to Toggle.
type Theme struct {
	dark bool
	subs []func(dark bool)
}

func New(dark bool) *Theme { return &Theme{dark: dark} }

func (t *Theme) Dark() bool { return t.dark }

func (t *Theme) Palette() Palette {
	if t.dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Toggle flips the mode and notifies subscribers in registration order.
func (t *Theme) Toggle() {
	t.dark = !t.dark
	for _, fn := range t.subs {
		fn(t.dark)
	}
}

func (t *Theme) Subscribe(fn func(dark bool)) {
	t.subs = append(t.subs, fn)
}

// Icon is the nav bar indicator for the current mode.
func (t *Theme) Icon() string {
	if t.dark {
		return "☾"
	}
	return "☀"
}
