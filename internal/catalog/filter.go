package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter is the search box + category menu predicate pair.
type Filter struct {
	Search   string
	Category Category
}

// Match reports whether b passes both predicates. An empty category is
// treated like All.
func (f Filter) Match(b *Building) bool {
	return f.matcher()(b)
}

// matcher folds the search term once and returns the predicate. A Caser
// keeps state between calls, so each matcher owns its own.
func (f Filter) matcher() func(*Building) bool {
	fold := cases.Fold()
	term := fold.String(f.Search)
	return func(b *Building) bool {
		if f.Category != "" && f.Category != All && b.Category != f.Category {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(fold.String(b.Name), term)
	}
}

// Filter returns the buildings matching f, in catalog order.
func (c *Catalog) Filter(f Filter) []*Building {
	match := f.matcher()
	out := make([]*Building, 0, len(c.buildings))
	for _, b := range c.buildings {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}
