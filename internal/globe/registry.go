package globe

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"archglobe/internal/catalog"
)

const (
	MarkerColor = "#FF0000"
	HoverColor  = "#FFA500"
)

// Marker is the visual object for one building.
type Marker struct {
	Position mgl64.Vec3
	Radius   float64
	Color    string
	Building *catalog.Building
}

// Hit is a marker the pointer ray passes through.
type Hit struct {
	Marker   *Marker
	Distance float64
}

// Registry owns the markers attached to the globe.
type Registry struct {
	markers   []*Marker
	hitRadius float64
}

// NewRegistry returns an empty registry. hitRadius is the pick sphere used
// by Intersect; values <= 0 fall back to MarkerRadius.
func NewRegistry(hitRadius float64) *Registry {
	if hitRadius <= 0 {
		hitRadius = MarkerRadius
	}
	return &Registry{hitRadius: hitRadius}
}

// Build replaces the current markers with one marker per catalog entry.
func (r *Registry) Build(c *catalog.Catalog) {
	r.Teardown()
	all := c.All()
	r.markers = make([]*Marker, 0, len(all))
	for _, b := range all {
		r.markers = append(r.markers, &Marker{
			Position: Project(b.Lat, b.Lon, MountRadius),
			Radius:   MarkerRadius,
			Color:    MarkerColor,
			Building: b,
		})
	}
}

// Teardown detaches every marker.
func (r *Registry) Teardown() {
	r.markers = nil
}

func (r *Registry) Len() int { return len(r.markers) }

// Markers returns the attached markers in catalog order.
func (r *Registry) Markers() []*Marker {
	out := make([]*Marker, len(r.markers))
	copy(out, r.markers)
	return out
}

// Intersect returns every marker the ray enters, nearest first.
func (r *Registry) Intersect(ray Ray) []Hit {
	var hits []Hit
	for _, m := range r.markers {
		if t, ok := ray.IntersectSphere(m.Position, r.hitRadius); ok {
			hits = append(hits, Hit{Marker: m, Distance: t})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Nearest returns the closest hit along the ray.
func (r *Registry) Nearest(ray Ray) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, m := range r.markers {
		t, ok := ray.IntersectSphere(m.Position, r.hitRadius)
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Marker: m, Distance: t}
			found = true
		}
	}
	return best, found
}
