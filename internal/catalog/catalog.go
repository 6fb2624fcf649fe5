package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateID = errors.New("duplicate building id")
	ErrName        = errors.New("building name is empty")
	ErrLatitude    = errors.New("latitude out of range")
	ErrLongitude   = errors.New("longitude out of range")
	ErrCategory    = errors.New("unknown category")
)

// Catalog is the read-only, ordered list of buildings. Consumers always get
// pointers into the catalog so that selections never go stale.
type Catalog struct {
	buildings []*Building
	byID      map[int]*Building
}

var builtin = []Building{
	{
		ID:       1,
		Name:     "Pont du Gard",
		Lat:      43.9476,
		Lon:      4.5350,
		Category: RomanArchitecture,
		Image:    "images/buildings/pont_du_gard.png",
		Details:  "Pont du Gard details",
	},
	{
		ID:       2,
		Name:     "Great Pyramid of Giza",
		Lat:      29.9792,
		Lon:      31.1342,
		Category: AncientEgyptian,
		Image:    "images/buildings/pyramid_of_giza.png",
		Details:  "Constructed around 2552 BC.",
	},
	{
		ID:       3,
		Name:     "Parthenon",
		Lat:      37.9715,
		Lon:      23.7267,
		Category: AncientGreek,
		Image:    "images/buildings/parthenon.png",
		Details:  "Constructed around 432 BC.",
	},
	{
		ID:       4,
		Name:     "Stonehenge",
		Lat:      51.1789,
		Lon:      -1.8262,
		Category: PrehistoricMonument,
		Image:    "images/buildings/stonehenge.png",
		Details:  "Constructed around 2500 BC.",
	},
	{
		ID:       5,
		Name:     "Pantheon",
		Lat:      41.8986,
		Lon:      12.4769,
		Category: AncientRoman,
		Image:    "images/buildings/pantheon.png",
		Details:  "Constructed around 126 CE.",
	},
}

// Builtin returns a copy of the built-in records.
func Builtin() []Building {
	out := make([]Building, len(builtin))
	copy(out, builtin)
	return out
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic(err)
	}
	return c
}

// New validates records and returns a catalog owning copies of them.
func New(records []Building) (*Catalog, error) {
	c := &Catalog{
		buildings: make([]*Building, 0, len(records)),
		byID:      make(map[int]*Building, len(records)),
	}
	for i := range records {
		b := records[i]
		if err := validate(b); err != nil {
			return nil, fmt.Errorf("building %d (%q): %w", b.ID, b.Name, err)
		}
		if _, ok := c.byID[b.ID]; ok {
			return nil, fmt.Errorf("building %d (%q): %w", b.ID, b.Name, ErrDuplicateID)
		}
		p := &b
		c.buildings = append(c.buildings, p)
		c.byID[b.ID] = p
	}
	return c, nil
}

func validate(b Building) error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrName
	}
	if b.Lat < -90 || b.Lat > 90 {
		return ErrLatitude
	}
	if b.Lon < -180 || b.Lon > 180 {
		return ErrLongitude
	}
	if !b.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrCategory, b.Category)
	}
	return nil
}

// All returns the buildings in catalog order.
func (c *Catalog) All() []*Building {
	out := make([]*Building, len(c.buildings))
	copy(out, c.buildings)
	return out
}

func (c *Catalog) Len() int { return len(c.buildings) }

// ByID returns the catalog record with the given id, or nil.
func (c *Catalog) ByID(id int) *Building { return c.byID[id] }

// Contains reports whether b is a pointer owned by this catalog.
func (c *Catalog) Contains(b *Building) bool {
	if b == nil {
		return false
	}
	return c.byID[b.ID] == b
}

// Names returns building names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.buildings))
	for i, b := range c.buildings {
		out[i] = b.Name
	}
	return out
}
