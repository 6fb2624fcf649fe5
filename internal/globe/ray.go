package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// NewRay normalises dir.
func NewRay(origin, dir mgl64.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectSphere returns the distance to the first point where the ray
// meets the sphere. A ray starting inside the sphere reports the exit point.
func (r Ray) IntersectSphere(center mgl64.Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
