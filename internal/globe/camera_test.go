package globe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera() *Camera { return NewCamera(15, 45, 7, 20) }

func TestCamera_Home(t *testing.T) {
	c := newTestCamera()
	assertVec(t, mgl64.Vec3{0, 0, 15}, c.Position())

	c.Orbit(1, 0.5)
	c.Zoom(0.5)
	c.Reset()
	assertVec(t, mgl64.Vec3{0, 0, 15}, c.Position())
}

func TestCamera_ZoomClamped(t *testing.T) {
	c := newTestCamera()
	c.Zoom(0.1)
	assert.Equal(t, 7.0, c.Distance)
	c.Zoom(100)
	assert.Equal(t, 20.0, c.Distance)
}

func TestCamera_ElevationClamped(t *testing.T) {
	c := newTestCamera()
	c.Orbit(0, math.Pi)
	assert.InDelta(t, maxElevation, c.Elevation, 1e-12)
	c.Orbit(0, -2*math.Pi)
	assert.InDelta(t, -maxElevation, c.Elevation, 1e-12)
}

func TestCaster_CentreRay(t *testing.T) {
	k := newTestCamera().Caster(1)
	r := k.Ray(0, 0)
	assertVec(t, mgl64.Vec3{0, 0, 15}, r.Origin)
	for i, want := range []float64{0, 0, -1} {
		assert.InDelta(t, want, r.Dir[i], 1e-6)
	}
}

func TestCaster_ProjectInvertsRay(t *testing.T) {
	c := newTestCamera()
	c.Orbit(0.4, 0.2)
	k := c.Caster(1.6)

	p := Project(30, -60, MountRadius)
	x, y, ok := k.Project(p)
	require.True(t, ok)
	assert.True(t, math.Abs(x) <= 1 && math.Abs(y) <= 1)

	r := k.Ray(x, y)
	d := p.Sub(r.Origin)
	closest := r.At(d.Dot(r.Dir))
	assert.InDelta(t, 0, closest.Sub(p).Len(), 1e-6)

	x, y, ok = k.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestControls_Damping(t *testing.T) {
	cam := newTestCamera()
	o := &Controls{Camera: cam, Damping: 0.25}

	assert.False(t, o.Update(), "idle controls do nothing")

	o.Rotate(1, 0)
	require.True(t, o.Update())
	assert.InDelta(t, 0.25, cam.Azimuth, 1e-12)

	steps := 0
	for o.Update() && steps < 200 {
		steps++
	}
	assert.False(t, o.Update())
	assert.InDelta(t, 1, cam.Azimuth, 1e-3)
}

func TestControls_NoDamping(t *testing.T) {
	cam := newTestCamera()
	o := &Controls{Camera: cam}
	o.Rotate(0.5, 0.1)
	assert.True(t, o.Update())
	assert.InDelta(t, 0.5, cam.Azimuth, 1e-12)
	assert.InDelta(t, 0.1, cam.Elevation, 1e-12)
	assert.False(t, o.Update())
}

func TestControls_Reset(t *testing.T) {
	cam := newTestCamera()
	o := &Controls{Camera: cam, Damping: 0.25}
	o.Rotate(2, 1)
	o.Update()
	o.Reset()
	assert.False(t, o.Update())
	assert.Zero(t, cam.Azimuth)
	assert.Zero(t, cam.Elevation)
}
