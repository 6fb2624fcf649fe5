package globe

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archglobe/internal/catalog"
)

type fakeSink struct {
	selected *catalog.Building
	hovered  *catalog.Building
	x, y     float64
	selects  int
	hovers   int
}

func (s *fakeSink) Selected() *catalog.Building { return s.selected }
func (s *fakeSink) SetSelected(b *catalog.Building) {
	s.selects++
	s.selected = b
}
func (s *fakeSink) SetHovered(b *catalog.Building) {
	s.hovers++
	s.hovered = b
}
func (s *fakeSink) SetPointer(x, y float64) { s.x, s.y = x, y }

var (
	testViewport = Viewport{Width: 20, Height: 10}
	centre       = Pointer{}
	t0           = time.Unix(5000, 0)
)

// facingCatalog has one building at lat 0 / lon -90, straight in front of
// the home camera.
func facingCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Building{
		{ID: 1, Name: "Front", Lat: 0, Lon: -90, Category: catalog.Modernism},
	})
	require.NoError(t, err)
	return c
}

func newTestEngine(t *testing.T, c *catalog.Catalog) (*Engine, *fakeSink) {
	t.Helper()
	r := NewRegistry(0.2)
	r.Build(c)
	s := &fakeSink{}
	return NewEngine(r, NewClick(100*time.Millisecond), s), s
}

func TestEngine_HoverOnly(t *testing.T) {
	c := facingCatalog(t)
	e, s := newTestEngine(t, c)

	f := e.Step(t0, newTestCamera(), centre, testViewport)
	assert.Same(t, c.ByID(1), f.Hovered)
	assert.Same(t, c.ByID(1), s.hovered)
	assert.Nil(t, f.Selected)
	assert.Zero(t, s.selects)
	assert.Equal(t, ClickIdle, f.Click)
}

func TestEngine_ClickSelects(t *testing.T) {
	c := facingCatalog(t)
	e, s := newTestEngine(t, c)
	cam := newTestCamera()

	e.Click().Arm(t0)
	f := e.Step(t0.Add(16*time.Millisecond), cam, centre, testViewport)
	assert.Same(t, c.ByID(1), f.Selected)
	assert.Same(t, c.ByID(1), s.selected)
	assert.Equal(t, 1, s.selects)

	// Still armed on the next frame: selecting the same building again is a no-op.
	f = e.Step(t0.Add(32*time.Millisecond), cam, centre, testViewport)
	assert.Equal(t, ClickArmed, f.Click)
	assert.Nil(t, f.Selected)
	assert.Equal(t, 1, s.selects)
	assert.Same(t, c.ByID(1), s.selected)
}

func TestEngine_ExpiredClickOnlyHovers(t *testing.T) {
	c := facingCatalog(t)
	e, s := newTestEngine(t, c)

	e.Click().Arm(t0)
	f := e.Step(t0.Add(150*time.Millisecond), newTestCamera(), centre, testViewport)
	assert.Equal(t, ClickIdle, f.Click)
	assert.Nil(t, f.Selected)
	assert.Nil(t, s.selected)
	assert.Same(t, c.ByID(1), s.hovered)
}

func TestEngine_MissClearsHover(t *testing.T) {
	c := facingCatalog(t)
	e, s := newTestEngine(t, c)
	cam := newTestCamera()

	e.Step(t0, cam, centre, testViewport)
	require.NotNil(t, s.hovered)

	e.Click().Arm(t0)
	f := e.Step(t0.Add(10*time.Millisecond), cam, Pointer{X: 0.99, Y: 0.99}, testViewport)
	assert.Nil(t, f.Hovered)
	assert.Nil(t, s.hovered)
	assert.Nil(t, s.selected, "click on empty space keeps the selection")
	assert.Equal(t, 2, s.hovers)
}

func TestEngine_ClickKeepsSelectionOnMiss(t *testing.T) {
	c := facingCatalog(t)
	e, s := newTestEngine(t, c)
	s.selected = c.ByID(1)

	e.Click().Arm(t0)
	e.Step(t0, newTestCamera(), Pointer{X: -0.99, Y: 0.99}, testViewport)
	assert.Same(t, c.ByID(1), s.selected)
	assert.Zero(t, s.selects)
}

func TestEngine_NearestSelected(t *testing.T) {
	near := &catalog.Building{ID: 1, Name: "near"}
	far := &catalog.Building{ID: 2, Name: "far"}
	r := NewRegistry(0.2)
	r.markers = []*Marker{
		{Position: mgl64.Vec3{0, 0, 10}, Building: far},
		{Position: mgl64.Vec3{0, 0, 12}, Building: near},
	}
	s := &fakeSink{}
	e := NewEngine(r, NewClick(0), s)

	e.Click().Arm(t0)
	f := e.Step(t0, newTestCamera(), centre, testViewport)
	assert.Same(t, near, f.Selected)
	assert.Same(t, near, f.Hovered)
}

func TestEngine_PointerScreen(t *testing.T) {
	e, s := newTestEngine(t, facingCatalog(t))
	vp := Viewport{Width: 80, Height: 24}

	f := e.Step(t0, newTestCamera(), centre, vp)
	assert.InDelta(t, 40, f.ScreenX, 1e-9)
	assert.InDelta(t, 12, f.ScreenY, 1e-9)

	e.Step(t0, newTestCamera(), Pointer{X: -1, Y: 1}, vp)
	assert.InDelta(t, 0, s.x, 1e-9)
	assert.InDelta(t, 0, s.y, 1e-9)
}

func TestEngine_EmptyRegistry(t *testing.T) {
	s := &fakeSink{}
	e := NewEngine(NewRegistry(0), NewClick(0), s)
	e.Click().Arm(t0)
	f := e.Step(t0, newTestCamera(), centre, testViewport)
	assert.Nil(t, f.Hovered)
	assert.Nil(t, s.selected)
}

func TestViewport(t *testing.T) {
	vp := Viewport{Width: 40, Height: 20}
	assert.InDelta(t, 1.0, vp.Aspect(), 1e-12)
	assert.Equal(t, 1.0, Viewport{}.Aspect())

	p := vp.NDC(0, 0)
	assert.InDelta(t, -1+1.0/40, p.X, 1e-12)
	assert.InDelta(t, 1-1.0/20, p.Y, 1e-12)

	x, y := vp.Screen(vp.NDC(10, 5))
	assert.InDelta(t, 10.5, x, 1e-9)
	assert.InDelta(t, 5.5, y, 1e-9)

	assert.Equal(t, Pointer{}, Viewport{}.NDC(3, 3))
}
