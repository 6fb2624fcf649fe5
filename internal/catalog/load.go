package catalog

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads building records from a CSV, GeoJSON or KML file. Records
// without an id get id 0 and are numbered by Merge.
func Load(path string) ([]Building, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		recs []Building
		err  error
	)
	switch ext {
	case ".csv":
		recs, err = LoadCSV(path)
	case ".geojson", ".json":
		recs, err = LoadGeoJSON(path)
	case ".kml":
		recs, err = LoadKML(path)
	default:
		return nil, fmt.Errorf("unsupported catalog file: %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return recs, nil
}

// Merge appends extra records to base, assigning ids to records that have
// none, and builds a validated catalog.
func Merge(base []Building, extra ...[]Building) (*Catalog, error) {
	all := make([]Building, 0, len(base))
	all = append(all, base...)
	for _, e := range extra {
		all = append(all, e...)
	}
	next := 0
	for _, b := range all {
		if b.ID > next {
			next = b.ID
		}
	}
	for i := range all {
		if all[i].ID == 0 {
			next++
			all[i].ID = next
		}
	}
	return New(all)
}

// parseCategory accepts a category by exact name or case-insensitively.
func parseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c
		}
	}
	return Category(s)
}

func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", s, err)
	}
	return id, nil
}

func propString(props map[string]any, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
