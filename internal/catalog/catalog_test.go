package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(bs []*Building) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Name
	}
	return out
}

func TestDefault_FiveBuildings(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())
	assert.Equal(t, []string{"Pont du Gard", "Great Pyramid of Giza", "Parthenon", "Stonehenge", "Pantheon"}, c.Names())

	for _, b := range c.All() {
		assert.True(t, c.Contains(b))
		assert.Same(t, b, c.ByID(b.ID))
	}
}

func TestContains_RejectsCopies(t *testing.T) {
	c := Default()
	cp := *c.ByID(1)
	assert.False(t, c.Contains(&cp))
	assert.False(t, c.Contains(nil))
}

func TestNew_Validation(t *testing.T) {
	good := Building{ID: 1, Name: "A", Lat: 10, Lon: 10, Category: Modernism}
	tests := []struct {
		name    string
		records []Building
		want    error
	}{
		{"duplicate id", []Building{good, good}, ErrDuplicateID},
		{"empty name", []Building{{ID: 1, Name: " ", Category: Modernism}}, ErrName},
		{"latitude", []Building{{ID: 1, Name: "A", Lat: 91, Category: Modernism}}, ErrLatitude},
		{"longitude", []Building{{ID: 1, Name: "A", Lon: -181, Category: Modernism}}, ErrLongitude},
		{"category", []Building{{ID: 1, Name: "A", Category: "Brutalism"}}, ErrCategory},
		{"all is not a category", []Building{{ID: 1, Name: "A", Category: All}}, ErrCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_OwnsCopies(t *testing.T) {
	recs := []Building{{ID: 1, Name: "A", Category: Modernism}}
	c, err := New(recs)
	require.NoError(t, err)
	recs[0].Name = "B"
	assert.Equal(t, "A", c.ByID(1).Name)
}

func TestFilter_SearchAll(t *testing.T) {
	c := Default()
	got := c.Filter(Filter{Search: "pan", Category: All})
	assert.Equal(t, []string{"Pantheon"}, names(got))
}

func TestFilter_CategoryOnly(t *testing.T) {
	c := Default()
	got := c.Filter(Filter{Category: PrehistoricMonument})
	assert.Equal(t, []string{"Stonehenge"}, names(got))
}

func TestFilter_CaseInsensitive(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"Parthenon"}, names(c.Filter(Filter{Search: "PARTH"})))
	assert.Equal(t, []string{"Pont du Gard"}, names(c.Filter(Filter{Search: "Du G"})))
	assert.Empty(t, c.Filter(Filter{Search: "taj"}))
}

func TestFilter_UnicodeFolding(t *testing.T) {
	c, err := New([]Building{
		{ID: 1, Name: "Großmarkthalle", Category: Modernism},
		{ID: 2, Name: "Temple of Zeus", Category: AncientGreek},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Großmarkthalle"}, names(c.Filter(Filter{Search: "GROSS"})))
	assert.Equal(t, []string{"Temple of Zeus"}, names(c.Filter(Filter{Search: "zEUS"})))
	assert.True(t, Filter{Search: "grOSS", Category: Modernism}.Match(c.ByID(1)))
}

func TestFilter_EmptyMatchesAllInOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, c.Names(), names(c.Filter(Filter{Category: All})))
	assert.Equal(t, c.Names(), names(c.Filter(Filter{})))
}

func TestFilter_ReturnsCatalogPointers(t *testing.T) {
	c := Default()
	for _, b := range c.Filter(Filter{Search: "e"}) {
		assert.Same(t, c.ByID(b.ID), b)
	}
}

func TestFilter_ExactSubsetAndCommutative(t *testing.T) {
	c := Default()
	searches := []string{"", "a", "pan", "on", "the", "x", "GIZA"}
	cats := append([]Category{All}, Categories()...)
	for _, s := range searches {
		for _, cat := range cats {
			got := c.Filter(Filter{Search: s, Category: cat})

			var want []*Building
			for _, b := range c.All() {
				if (Filter{Search: s}).Match(b) && (Filter{Category: cat}).Match(b) {
					want = append(want, b)
				}
			}
			assert.ElementsMatch(t, want, got, "search=%q category=%q", s, cat)

			// category then search over the intermediate list
			var catFirst []*Building
			for _, b := range c.Filter(Filter{Category: cat}) {
				if (Filter{Search: s}).Match(b) {
					catFirst = append(catFirst, b)
				}
			}
			var searchFirst []*Building
			for _, b := range c.Filter(Filter{Search: s}) {
				if (Filter{Category: cat}).Match(b) {
					searchFirst = append(searchFirst, b)
				}
			}
			assert.ElementsMatch(t, catFirst, searchFirst, "search=%q category=%q", s, cat)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "All Categories", All.Label())
	assert.Equal(t, "Modernism", Modernism.Label())
	assert.Len(t, Categories(), 7)
}

func TestMerge_AssignsIDs(t *testing.T) {
	extra := []Building{
		{Name: "Taj Mahal", Lat: 27.1751, Lon: 78.0421, Category: MughalArchitecture},
		{Name: "Villa Savoye", Lat: 48.9244, Lon: 2.0283, Category: Modernism},
	}
	c, err := Merge(Builtin(), extra)
	require.NoError(t, err)
	require.Equal(t, 7, c.Len())
	assert.Equal(t, "Taj Mahal", c.ByID(6).Name)
	assert.Equal(t, "Villa Savoye", c.ByID(7).Name)
}

func TestMerge_DuplicateID(t *testing.T) {
	extra := []Building{{ID: 3, Name: "Dup", Category: Modernism}}
	_, err := Merge(Builtin(), extra)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseCategory(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Category
	}{
		{"", All},
		{"ALL", All},
		{"modernism", Modernism},
		{" Ancient Greek Architecture ", AncientGreek},
	} {
		got, err := ParseCategory(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseCategory("Brutalism")
	assert.ErrorIs(t, err, ErrCategory)
}
