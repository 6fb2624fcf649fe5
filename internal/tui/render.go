package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"archglobe/internal/catalog"
	"archglobe/internal/globe"
	"archglobe/internal/theme"
)

const (
	ambient     = 0.5
	directional = 1.0
	shadeLevels = 6
)

var lightDir = mgl64.Vec3{10, 10, 5}.Normalize()

// scene is everything the globe renderer reads for one frame.
type scene struct {
	camera   *globe.Camera
	surface  *globe.Surface
	markers  []*globe.Marker
	hovered  *catalog.Building
	selected *catalog.Building
	palette  theme.Palette
}

// shader caches the Lab blends between shadow and lit colours.
type shader struct {
	land, landShadow, ocean, oceanShadow colorful.Color
	cache                                map[int]string
}

func newShader(p theme.Palette) *shader {
	land := mustHex(p.Land)
	ocean := mustHex(p.Ocean)
	return &shader{
		land:        land,
		landShadow:  mustHex(p.LandShadow),
		ocean:       ocean,
		oceanShadow: ocean.BlendLab(colorful.Color{}, 0.6),
		cache:       map[int]string{},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

// color returns the hex colour for a surface cell at lit fraction s.
func (sh *shader) color(land bool, s float64) string {
	level := int(math.Round(mgl64.Clamp(s, 0, 1) * shadeLevels))
	key := level
	if land {
		key += shadeLevels + 1
	}
	if hex, ok := sh.cache[key]; ok {
		return hex
	}
	t := float64(level) / shadeLevels
	var c colorful.Color
	if land {
		c = sh.landShadow.BlendLab(sh.land, t)
	} else {
		c = sh.oceanShadow.BlendLab(sh.ocean, t)
	}
	hex := c.Clamped().Hex()
	sh.cache[key] = hex
	return hex
}

// lighting is ambient plus one directional light, scaled to [0, 1].
func lighting(normal mgl64.Vec3) float64 {
	return (ambient + directional*math.Max(0, normal.Dot(lightDir))) / (ambient + directional)
}

// stipple picks the ocean micro-pixels that are drawn.
func stipple(mx, my int) bool { return mx%2 == 0 && my%2 == 0 }

// renderGlobe ray-casts every micro-pixel of a w x h cell area. Nothing is
// drawn until the surface texture is loaded.
func renderGlobe(sc scene, w, h int) *brailleBuf {
	buf := newBrailleBuf(w, h)
	if buf.w == 0 || buf.h == 0 || !sc.surface.Ready() {
		return buf
	}
	tex := sc.surface.Texture()
	vp := globe.Viewport{Width: w, Height: h}
	k := sc.camera.Caster(vp.Aspect())
	sh := newShader(sc.palette)

	type acc struct {
		land, ocean int
		light       float64
	}
	cells := make([]acc, w*h)
	wm, hm := w*2, h*4
	for my := 0; my < hm; my++ {
		y := 1 - (float64(my)+0.5)/float64(hm)*2
		for mx := 0; mx < wm; mx++ {
			x := (float64(mx)+0.5)/float64(wm)*2 - 1
			ray := k.Ray(x, y)
			t, ok := ray.IntersectSphere(mgl64.Vec3{}, globe.GlobeRadius)
			if !ok {
				continue
			}
			p := ray.At(t)
			lat, lon := globe.LatLon(p)
			c := &cells[(my/4)*w+mx/2]
			if tex.Land(lat, lon) {
				buf.setPixel(mx, my)
				c.land++
			} else {
				c.ocean++
				if stipple(mx, my) {
					buf.setPixel(mx, my)
				}
			}
			c.light += lighting(p.Normalize())
		}
	}
	for i, c := range cells {
		n := c.land + c.ocean
		if n == 0 {
			continue
		}
		buf.colorCell(i%w, i/w, sh.color(c.land >= c.ocean, c.light/float64(n)), zSurface)
	}

	drawMarkers(buf, k, sc)
	return buf
}

// drawMarkers draws every marker on the near side of the globe as a dot
// scaled by perspective.
func drawMarkers(buf *brailleBuf, k globe.Caster, sc scene) {
	eye := k.Eye()
	wm, hm := float64(buf.w*2), float64(buf.h*4)
	focal := 1 / math.Tan(mgl64.DegToRad(sc.camera.FovY)/2)
	for _, m := range sc.markers {
		if occluded(eye, m.Position) {
			continue
		}
		x, y, ok := k.Project(m.Position)
		if !ok {
			continue
		}
		cx := (x + 1) / 2 * wm
		cy := (1 - y) / 2 * hm
		r := m.Radius / m.Position.Sub(eye).Len() * focal * hm / 2
		color, z := m.Color, zMarker
		switch m.Building {
		case sc.selected:
			color, z = sc.palette.Selected, zSelected
		case sc.hovered:
			color, z = globe.HoverColor, zHover
		}
		disc(buf, cx, cy, math.Max(r, 1), color, z)
	}
}

func disc(buf *brailleBuf, cx, cy, r float64, color string, z int) {
	ri := int(math.Ceil(r))
	x0, y0 := int(math.Floor(cx)), int(math.Floor(cy))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) > r*r+0.5 {
				continue
			}
			mx, my := x0+dx, y0+dy
			if mx < 0 || my < 0 {
				continue
			}
			buf.setPixel(mx, my)
			buf.colorCell(mx/2, my/4, color, z)
		}
	}
}

// occluded reports whether the globe sits between the eye and p.
func occluded(eye, p mgl64.Vec3) bool {
	d := p.Sub(eye)
	t, ok := globe.NewRay(eye, d).IntersectSphere(mgl64.Vec3{}, globe.GlobeRadius)
	return ok && t < d.Len()
}

// pointerGeo returns the lat/lon under the pointer, if it is on the globe.
func pointerGeo(cam *globe.Camera, p globe.Pointer, vp globe.Viewport) (lat, lon float64, ok bool) {
	ray := cam.Caster(vp.Aspect()).Ray(p.X, p.Y)
	t, hit := ray.IntersectSphere(mgl64.Vec3{}, globe.GlobeRadius)
	if !hit {
		return 0, 0, false
	}
	lat, lon = globe.LatLon(ray.At(t))
	return lat, lon, true
}
