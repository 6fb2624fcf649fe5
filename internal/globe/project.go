package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// GlobeRadius is the radius of the textured sphere.
	GlobeRadius = 5.0
	// MountRadius is where marker centres sit, just outside the globe mesh.
	MountRadius = 5.1
	// MarkerRadius is the drawn marker size.
	MarkerRadius = 0.1
)

// Project maps latitude/longitude in degrees onto a sphere of radius r.
// The north pole is +Y and longitude is offset by 180° so the texture seam
// lines up with the 0° meridian.
func Project(lat, lon, r float64) mgl64.Vec3 {
	phi := mgl64.DegToRad(90 - lat)
	theta := mgl64.DegToRad(lon + 180)
	return mgl64.Vec3{
		-(r * math.Sin(phi) * math.Cos(theta)),
		r * math.Cos(phi),
		r * math.Sin(phi) * math.Sin(theta),
	}
}

// LatLon is the inverse of Project for any point off the origin.
func LatLon(p mgl64.Vec3) (lat, lon float64) {
	r := p.Len()
	if r == 0 {
		return 0, 0
	}
	lat = 90 - mgl64.RadToDeg(math.Acos(mgl64.Clamp(p.Y()/r, -1, 1)))
	theta := math.Atan2(p.Z(), -p.X())
	lon = mgl64.RadToDeg(theta) - 180
	if lon < -180 {
		lon += 360
	}
	return lat, lon
}
