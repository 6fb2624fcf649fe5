package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const maxElevation = 85 * math.Pi / 180

// Camera orbits the origin. Azimuth 0 / elevation 0 puts it on +Z.
type Camera struct {
	Distance  float64
	Azimuth   float64 // radians
	Elevation float64 // radians
	FovY      float64 // degrees
	Near      float64
	Far       float64

	MinDistance float64
	MaxDistance float64

	home float64
}

// NewCamera returns a camera at (0, 0, distance).
func NewCamera(distance, fovY, minDistance, maxDistance float64) *Camera {
	c := &Camera{
		FovY:        fovY,
		Near:        0.1,
		Far:         1000,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		home:        distance,
	}
	c.Reset()
	return c
}

// Reset puts the camera back where it started.
func (c *Camera) Reset() {
	c.Distance = mgl64.Clamp(c.home, c.MinDistance, c.MaxDistance)
	c.Azimuth = 0
	c.Elevation = 0
}

func (c *Camera) Position() mgl64.Vec3 {
	ce := math.Cos(c.Elevation)
	return mgl64.Vec3{
		c.Distance * ce * math.Sin(c.Azimuth),
		c.Distance * math.Sin(c.Elevation),
		c.Distance * ce * math.Cos(c.Azimuth),
	}
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position(), mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0})
}

func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// Orbit rotates around the origin; elevation stays short of the poles.
func (c *Camera) Orbit(dAzimuth, dElevation float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzimuth, 2*math.Pi)
	c.Elevation = mgl64.Clamp(c.Elevation+dElevation, -maxElevation, maxElevation)
}

// Zoom scales the distance, clamped to [MinDistance, MaxDistance].
func (c *Camera) Zoom(factor float64) {
	c.Distance = mgl64.Clamp(c.Distance*factor, c.MinDistance, c.MaxDistance)
}

// Caster turns normalised device coordinates into world rays for one frame.
type Caster struct {
	eye mgl64.Vec3
	inv mgl64.Mat4
	vp  mgl64.Mat4
}

// Caster snapshots the camera matrices for the given aspect ratio.
func (c *Camera) Caster(aspect float64) Caster {
	vp := c.Projection(aspect).Mul4(c.View())
	return Caster{eye: c.Position(), inv: vp.Inv(), vp: vp}
}

// Eye is the camera position.
func (k Caster) Eye() mgl64.Vec3 { return k.eye }

// Ray casts from the eye through (x, y) in NDC, both in [-1, 1], +y up.
func (k Caster) Ray(x, y float64) Ray {
	far := k.inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	p := far.Vec3().Mul(1 / far.W())
	return NewRay(k.eye, p.Sub(k.eye))
}

// Project returns the NDC of a world point. ok is false behind the camera.
func (k Caster) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := k.vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	return clip.X() / clip.W(), clip.Y() / clip.W(), true
}

// Controls applies orbit input with damping, one step per frame.
type Controls struct {
	Camera  *Camera
	Damping float64

	dAz, dEl float64
}

// Rotate queues an orbit delta.
func (o *Controls) Rotate(dAzimuth, dElevation float64) {
	o.dAz += dAzimuth
	o.dEl += dElevation
}

// Update applies part of the queued delta and decays the rest. It reports
// whether the camera moved.
func (o *Controls) Update() bool {
	if o.dAz == 0 && o.dEl == 0 {
		return false
	}
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Camera.Orbit(o.dAz, o.dEl)
		o.dAz, o.dEl = 0, 0
		return true
	}
	o.Camera.Orbit(o.dAz*o.Damping, o.dEl*o.Damping)
	o.dAz *= 1 - o.Damping
	o.dEl *= 1 - o.Damping
	if math.Abs(o.dAz) < 1e-4 && math.Abs(o.dEl) < 1e-4 {
		o.dAz, o.dEl = 0, 0
	}
	return true
}

// Reset drops pending motion and resets the camera.
func (o *Controls) Reset() {
	o.dAz, o.dEl = 0, 0
	o.Camera.Reset()
}
