package globe

import (
	"time"

	"archglobe/internal/catalog"
)

// Sink receives the engine's per-frame results.
type Sink interface {
	Selected() *catalog.Building
	SetSelected(b *catalog.Building)
	SetHovered(b *catalog.Building)
	SetPointer(x, y float64)
}

// Pointer is the pointer position in normalised device coordinates.
type Pointer struct {
	X, Y float64
}

// Viewport is the globe area in terminal cells. Rendering uses braille
// micro-pixels (2x4 per cell), which are close to square.
type Viewport struct {
	Width  int
	Height int
}

// Aspect is the micro-pixel aspect ratio.
func (v Viewport) Aspect() float64 {
	if v.Height <= 0 {
		return 1
	}
	return float64(v.Width*2) / float64(v.Height*4)
}

// Screen converts the pointer to cell coordinates, origin top-left.
func (v Viewport) Screen(p Pointer) (x, y float64) {
	return (p.X + 1) * float64(v.Width) / 2, (-p.Y + 1) * float64(v.Height) / 2
}

// NDC converts a cell (column, row) inside the viewport to the NDC of its
// centre.
func (v Viewport) NDC(col, row int) Pointer {
	if v.Width <= 0 || v.Height <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: (float64(col)+0.5)/float64(v.Width)*2 - 1,
		Y: -((float64(row)+0.5)/float64(v.Height)*2 - 1),
	}
}

// Frame is what one engine step resolved.
type Frame struct {
	Hovered  *catalog.Building
	Selected *catalog.Building // non-nil only when the selection changed
	Click    ClickState
	ScreenX  float64
	ScreenY  float64
}

// Engine resolves hover and click against the registry once per frame.
type Engine struct {
	registry *Registry
	click    *Click
	sink     Sink
}

func NewEngine(registry *Registry, click *Click, sink Sink) *Engine {
	return &Engine{registry: registry, click: click, sink: sink}
}

// Click is the engine's click machine; the UI arms it on pointer clicks.
func (e *Engine) Click() *Click { return e.click }

// Step runs one frame: click resolution while armed, then hover, then the
// pointer's screen position.
func (e *Engine) Step(now time.Time, cam *Camera, p Pointer, vp Viewport) Frame {
	ray := cam.Caster(vp.Aspect()).Ray(p.X, p.Y)
	hit, ok := e.registry.Nearest(ray)

	var f Frame
	f.Click = e.click.Advance(now)
	if f.Click == ClickArmed && ok {
		b := hit.Marker.Building
		if b != e.sink.Selected() {
			e.sink.SetSelected(b)
			f.Selected = b
		}
	}

	if ok {
		f.Hovered = hit.Marker.Building
	}
	e.sink.SetHovered(f.Hovered)

	f.ScreenX, f.ScreenY = vp.Screen(p)
	e.sink.SetPointer(f.ScreenX, f.ScreenY)
	return f
}
