package catalog

import (
	"fmt"
	"strings"
)

// Category is one of the fixed architectural categories a building belongs to.
type Category string

const (
	// All disables the category predicate of a Filter.
	All Category = "all"

	RomanArchitecture   Category = "Roman Architecture"
	Modernism           Category = "Modernism"
	MughalArchitecture  Category = "Mughal Architecture"
	AncientEgyptian     Category = "Ancient Egyptian Architecture"
	AncientGreek        Category = "Ancient Greek Architecture"
	PrehistoricMonument Category = "Prehistoric Monument"
	AncientRoman        Category = "Ancient Roman Architecture"
)

var categories = []Category{
	RomanArchitecture,
	Modernism,
	MughalArchitecture,
	AncientEgyptian,
	AncientGreek,
	PrehistoricMonument,
	AncientRoman,
}

// Categories returns the enumeration in menu order (without All).
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is part of the enumeration. All is not a valid
// building category.
func (c Category) Valid() bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

// Label is the text shown in menus.
func (c Category) Label() string {
	if c == All {
		return "All Categories"
	}
	return string(c)
}

// Building is one immutable catalog record.
type Building struct {
	ID       int
	Name     string
	Lat      float64
	Lon      float64
	Category Category
	Image    string
	Details  string
}

// ParseCategory resolves a user-supplied category name. Empty and "all"
// both mean All.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(All)) {
		return All, nil
	}
	c := parseCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrCategory, s)
	}
	return c, nil
}
