package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_NotifiesSubscribers(t *testing.T) {
	th := New(true)
	assert.True(t, th.Dark())
	assert.True(t, th.Palette().IsDark)
	assert.Equal(t, "☾", th.Icon())

	var got []bool
	th.Subscribe(func(dark bool) { got = append(got, dark) })
	th.Subscribe(func(dark bool) { got = append(got, !dark) })

	th.Toggle()
	assert.False(t, th.Dark())
	assert.False(t, th.Palette().IsDark)
	assert.Equal(t, "☀", th.Icon())
	assert.Equal(t, []bool{false, true}, got)

	th.Toggle()
	assert.Equal(t, []bool{false, true, true, false}, got)
}

func TestPalettes_Distinct(t *testing.T) {
	for _, p := range []Palette{LightPalette(), DarkPalette()} {
		assert.NotEqual(t, p.Land, p.Ocean)
		assert.NotEqual(t, p.Land, p.LandShadow)
		assert.NotEqual(t, "#FF0000", p.Selected)
	}
}
