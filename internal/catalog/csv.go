package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterstace/simplefeatures/geom"
)

// LoadCSV reads buildings from a CSV file with a header row.
// Column detection (case-insensitive): id, name, lat|latitude|y,
// lon|lng|long|longitude|x, category, image, details. A wkt|geometry column
// holding POINT(lon lat) may replace the coordinate columns.
func LoadCSV(path string) ([]Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := map[string]int{}
	for i, h := range recs[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		switch key {
		case "latitude", "y":
			key = "lat"
		case "lng", "long", "longitude", "x":
			key = "lon"
		case "geometry":
			key = "wkt"
		case "description":
			key = "details"
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	_, hasLat := idx["lat"]
	_, hasLon := idx["lon"]
	_, hasWKT := idx["wkt"]
	if !(hasLat && hasLon) && !hasWKT {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}
	if _, ok := idx["name"]; !ok {
		return nil, errors.New("csv: name column not found")
	}
	col := func(row []string, key string) string {
		i, ok := idx[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Building
	for n, row := range recs[1:] {
		line := n + 2
		id, err := parseID(col(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		var lat, lon float64
		if w := col(row, "wkt"); w != "" {
			lon, lat, err = pointFromWKT(w)
		} else {
			lat, lon, err = parseLatLon(col(row, "lat"), col(row, "lon"))
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		out = append(out, Building{
			ID:       id,
			Name:     col(row, "name"),
			Lat:      lat,
			Lon:      lon,
			Category: parseCategory(col(row, "category")),
			Image:    col(row, "image"),
			Details:  col(row, "details"),
		})
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no buildings parsed")
	}
	return out, nil
}

func parseLatLon(latS, lonS string) (float64, float64, error) {
	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude %q: %w", latS, err)
	}
	lon, err := strconv.ParseFloat(lonS, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude %q: %w", lonS, err)
	}
	return lat, lon, nil
}

// pointFromWKT returns lon, lat of a WKT POINT.
func pointFromWKT(wkt string) (float64, float64, error) {
	g, err := geom.UnmarshalWKT(wkt)
	if err != nil {
		return 0, 0, fmt.Errorf("wkt: %w", err)
	}
	if g.Type() != geom.TypePoint {
		return 0, 0, fmt.Errorf("wkt: expected POINT, got %s", g.Type())
	}
	c, ok := g.MustAsPoint().Coordinates()
	if !ok {
		return 0, 0, errors.New("wkt: empty point")
	}
	return c.XY.X, c.XY.Y, nil
}
