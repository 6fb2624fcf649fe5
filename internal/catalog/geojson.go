package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterstace/simplefeatures/geom"
)

// LoadGeoJSON reads buildings from a FeatureCollection of Point features.
// Feature properties: id, name, category, image, details.
func LoadGeoJSON(path string) ([]Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc geom.GeoJSONFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var out []Building
	for i, f := range fc {
		if f.Geometry.Type() != geom.TypePoint {
			continue
		}
		c, ok := f.Geometry.MustAsPoint().Coordinates()
		if !ok {
			continue
		}
		props := f.Properties
		if props == nil {
			props = map[string]any{}
		}
		id, err := parseID(propString(props, "id"))
		if err != nil {
			return nil, fmt.Errorf("geojson feature %d: %w", i, err)
		}
		if id == 0 {
			if fid, ok := f.ID.(float64); ok {
				id = int(fid)
			}
		}
		out = append(out, Building{
			ID:       id,
			Name:     propString(props, "name"),
			Lat:      c.XY.Y,
			Lon:      c.XY.X,
			Category: parseCategory(propString(props, "category")),
			Image:    propString(props, "image"),
			Details:  propString(props, "details"),
		})
	}
	if len(out) == 0 {
		return nil, errors.New("geojson: no point features")
	}
	return out, nil
}
