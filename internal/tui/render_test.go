package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archglobe/internal/catalog"
	"archglobe/internal/globe"
	"archglobe/internal/theme"
)

func loadedSurface(t *testing.T) *globe.Surface {
	t.Helper()
	tex, err := globe.LoadTexture("")
	require.NoError(t, err)
	s := &globe.Surface{}
	require.True(t, s.Resolve(tex, nil))
	return s
}

func oneBuilding(t *testing.T, lat, lon float64) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Building{
		{ID: 1, Name: "Solo", Lat: lat, Lon: lon, Category: catalog.Modernism, Details: "A test building."},
	})
	require.NoError(t, err)
	return c
}

func testScene(t *testing.T, c *catalog.Catalog) scene {
	r := globe.NewRegistry(0)
	r.Build(c)
	return scene{
		camera:  globe.NewCamera(15, 45, 7, 20),
		surface: loadedSurface(t),
		markers: r.Markers(),
		palette: theme.DarkPalette(),
	}
}

func TestRenderGlobe_Disc(t *testing.T) {
	sc := testScene(t, oneBuilding(t, 0, -90))
	buf := renderGlobe(sc, 89, 35)
	lines := buf.toLines()
	require.Len(t, lines, 35)

	assert.NotEqual(t, ' ', []rune(lines[17])[44], "globe centre is drawn")
	assert.Equal(t, ' ', []rune(lines[0])[0], "corner is space")
	assert.Equal(t, ' ', []rune(lines[17])[0], "left edge is space")
}

func TestRenderGlobe_NotLoaded(t *testing.T) {
	sc := testScene(t, oneBuilding(t, 0, -90))
	sc.surface = &globe.Surface{}
	buf := renderGlobe(sc, 20, 10)
	for _, l := range buf.toLines() {
		assert.Equal(t, "                    ", l)
	}
}

func TestRenderGlobe_MarkerColours(t *testing.T) {
	c := oneBuilding(t, 0, -90)
	sc := testScene(t, c)

	buf := renderGlobe(sc, 89, 35)
	assert.Equal(t, globe.MarkerColor, buf.fg[17][44])

	sc.hovered = c.ByID(1)
	buf = renderGlobe(sc, 89, 35)
	assert.Equal(t, globe.HoverColor, buf.fg[17][44])

	sc.selected = c.ByID(1)
	buf = renderGlobe(sc, 89, 35)
	assert.Equal(t, sc.palette.Selected, buf.fg[17][44], "selection wins over hover")
}

func TestRenderGlobe_HidesOccludedMarkers(t *testing.T) {
	sc := testScene(t, oneBuilding(t, 0, 90))
	buf := renderGlobe(sc, 89, 35)
	assert.NotEqual(t, globe.MarkerColor, buf.fg[17][44])
	assert.Equal(t, zSurface, buf.z[17][44])
}

func TestShader_Quantised(t *testing.T) {
	sh := newShader(theme.LightPalette())
	lit := sh.color(true, 1)
	assert.Equal(t, lit, sh.color(true, 0.99))
	assert.NotEqual(t, lit, sh.color(true, 0.2))
	assert.NotEqual(t, lit, sh.color(false, 1))
	assert.Len(t, lit, 7)
}

func TestLighting_Range(t *testing.T) {
	assert.InDelta(t, 1.0, lighting(lightDir), 1e-12)
	assert.InDelta(t, ambient/(ambient+directional), lighting(lightDir.Mul(-1)), 1e-12)
}

func TestPointerGeo(t *testing.T) {
	cam := globe.NewCamera(15, 45, 7, 20)
	vp := globe.Viewport{Width: 40, Height: 20}
	lat, lon, ok := pointerGeo(cam, globe.Pointer{}, vp)
	require.True(t, ok)
	assert.InDelta(t, 0, lat, 1e-6)
	assert.InDelta(t, -90, lon, 1e-6)

	_, _, ok = pointerGeo(cam, globe.Pointer{X: 0.99, Y: 0.99}, vp)
	assert.False(t, ok)
}
