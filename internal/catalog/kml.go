package catalog

import (
	"encoding/xml"
	"errors"
	"os"
	"strconv"
	"strings"
)

type kmlData struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

type kmlPlacemark struct {
	ID          string    `xml:"id,attr"`
	Name        string    `xml:"name"`
	Description string    `xml:"description"`
	Data        []kmlData `xml:"ExtendedData>Data"`
	Point       *struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Document>Placemark"`
	Top        []kmlPlacemark `xml:"Placemark"`
}

// LoadKML reads Placemark > Point buildings. KML coordinates are
// "lon,lat[,alt]"; altitude is ignored. Category and image come from
// ExtendedData entries of the same name.
func LoadKML(path string) ([]Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	var out []Building
	for _, pm := range append(doc.Placemarks, doc.Top...) {
		if pm.Point == nil {
			continue
		}
		vals := strings.Split(strings.TrimSpace(pm.Point.Coordinates), ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		b := Building{
			Name:    strings.TrimSpace(pm.Name),
			Lat:     lat,
			Lon:     lon,
			Details: strings.TrimSpace(pm.Description),
		}
		b.ID, _ = strconv.Atoi(pm.ID)
		for _, d := range pm.Data {
			switch strings.ToLower(d.Name) {
			case "category":
				b.Category = parseCategory(d.Value)
			case "image":
				b.Image = strings.TrimSpace(d.Value)
			}
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return out, nil
}
