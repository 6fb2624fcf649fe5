package globe

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/peterstace/simplefeatures/geom"
)

//go:embed assets/land.geojson
var builtinLand []byte

var (
	ErrUnsupportedTexture = errors.New("unsupported texture format")
	ErrEmptyTexture       = errors.New("texture has no land")
)

// Texture is an equirectangular land mask: row 0 is lat 90, column 0 is
// lon -180. Values are in [0, 1]; 0.5 and above is land.
type Texture struct {
	Width  int
	Height int
	values []float64
}

func NewTexture(w, h int) *Texture {
	return &Texture{Width: w, Height: h, values: make([]float64, w*h)}
}

func (t *Texture) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return
	}
	t.values[y*t.Width+x] = v
}

func (t *Texture) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return 0
	}
	return t.values[y*t.Width+x]
}

// Sample returns the nearest texel for lat/lon in degrees.
func (t *Texture) Sample(lat, lon float64) float64 {
	if t == nil || t.Width == 0 || t.Height == 0 {
		return 0
	}
	x := int(math.Floor((lon + 180) / 360 * float64(t.Width)))
	y := int(math.Floor((90 - lat) / 180 * float64(t.Height)))
	x = ((x % t.Width) + t.Width) % t.Width
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.values[y*t.Width+x]
}

// Land reports whether lat/lon falls on land.
func (t *Texture) Land(lat, lon float64) bool { return t.Sample(lat, lon) >= 0.5 }

func (t *Texture) landCount() int {
	n := 0
	for _, v := range t.values {
		if v >= 0.5 {
			n++
		}
	}
	return n
}

// LoadTexture reads a surface texture. An empty path loads the built-in
// land polygons. GeoJSON files are rasterised; PNG/JPEG images are treated
// as equirectangular and thresholded on luminance.
func LoadTexture(path string) (*Texture, error) {
	var (
		tex *Texture
		err error
	)
	if path == "" {
		tex, err = RasterizeGeoJSON(builtinLand, 360, 180)
	} else {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".geojson", ".json":
			var data []byte
			data, err = os.ReadFile(path)
			if err == nil {
				tex, err = RasterizeGeoJSON(data, 360, 180)
			}
		case ".png", ".jpg", ".jpeg":
			var f *os.File
			f, err = os.Open(path)
			if err == nil {
				defer f.Close()
				var img image.Image
				img, _, err = image.Decode(f)
				if err == nil {
					tex = FromImage(img)
				}
			}
		default:
			err = fmt.Errorf("%w: %q", ErrUnsupportedTexture, filepath.Ext(path))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	if tex.landCount() == 0 {
		return nil, fmt.Errorf("load texture: %w", ErrEmptyTexture)
	}
	return tex, nil
}

// FromImage thresholds an equirectangular image on its mean Lab lightness.
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	tex := NewTexture(b.Dx(), b.Dy())
	light := make([]float64, 0, b.Dx()*b.Dy())
	sum := 0.0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := colorful.MakeColor(img.At(x, y))
			l, _, _ := c.Lab()
			light = append(light, l)
			sum += l
		}
	}
	if len(light) == 0 {
		return tex
	}
	mean := sum / float64(len(light))
	for i, l := range light {
		if l > mean {
			tex.values[i] = 1
		}
	}
	return tex
}

// RasterizeGeoJSON fills the Polygon/MultiPolygon geometries of a GeoJSON
// document into a w x h texture. Rings of one polygon are filled with the
// even-odd rule, so holes stay empty; separate polygons are unioned.
// Bare geometries are read without validation so overlapping parts are
// accepted.
func RasterizeGeoJSON(data []byte, w, h int) (*Texture, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var gs []geom.Geometry
	switch head.Type {
	case "FeatureCollection":
		var fc geom.GeoJSONFeatureCollection
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		for _, f := range fc {
			gs = append(gs, f.Geometry)
		}
	case "Feature":
		var f geom.GeoJSONFeature
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		gs = append(gs, f.Geometry)
	default:
		g, err := geom.UnmarshalGeoJSON(data, geom.DisableAllValidations)
		if err != nil {
			return nil, fmt.Errorf("geojson: %w", err)
		}
		gs = append(gs, g)
	}

	var polys [][][][2]float64
	for _, g := range gs {
		polys = appendPolygons(polys, g)
	}
	if len(polys) == 0 {
		return nil, errors.New("geojson: no polygons")
	}
	tex := NewTexture(w, h)
	for _, poly := range polys {
		fillPolygon(tex, poly)
	}
	return tex, nil
}

func appendPolygons(out [][][][2]float64, g geom.Geometry) [][][][2]float64 {
	switch g.Type() {
	case geom.TypePolygon:
		p, _ := g.AsPolygon()
		if rings := polygonRings(p); len(rings) > 0 {
			out = append(out, rings)
		}
	case geom.TypeMultiPolygon:
		mp, _ := g.AsMultiPolygon()
		for i := 0; i < mp.NumPolygons(); i++ {
			if rings := polygonRings(mp.PolygonN(i)); len(rings) > 0 {
				out = append(out, rings)
			}
		}
	case geom.TypeGeometryCollection:
		gc, _ := g.AsGeometryCollection()
		for i := 0; i < gc.NumGeometries(); i++ {
			out = appendPolygons(out, gc.GeometryN(i))
		}
	}
	return out
}

// polygonRings returns the exterior ring followed by the holes as lon/lat
// pairs.
func polygonRings(p geom.Polygon) [][][2]float64 {
	if p.IsEmpty() {
		return nil
	}
	rings := [][][2]float64{ringCoords(p.ExteriorRing())}
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, ringCoords(p.InteriorRingN(i)))
	}
	return rings
}

func ringCoords(ls geom.LineString) [][2]float64 {
	seq := ls.Coordinates()
	out := make([][2]float64, seq.Length())
	for i := range out {
		xy := seq.GetXY(i)
		out[i] = [2]float64{xy.X, xy.Y}
	}
	return out
}

// fillPolygon scanlines one polygon at texel centres.
func fillPolygon(tex *Texture, rings [][][2]float64) {
	for y := 0; y < tex.Height; y++ {
		lat := 90 - (float64(y)+0.5)*180/float64(tex.Height)
		var xs []float64
		for _, ring := range rings {
			for i := 0; i < len(ring); i++ {
				a := ring[i]
				b := ring[(i+1)%len(ring)]
				if a[1] == b[1] {
					continue
				}
				if (lat >= a[1] && lat < b[1]) || (lat >= b[1] && lat < a[1]) {
					t := (lat - a[1]) / (b[1] - a[1])
					xs = append(xs, a[0]+t*(b[0]-a[0]))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := 0; x < tex.Width; x++ {
				lon := -180 + (float64(x)+0.5)*360/float64(tex.Width)
				if lon >= xs[i] && lon <= xs[i+1] {
					tex.Set(x, y, 1)
				}
			}
		}
	}
}
