package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/geo"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"france", "France"},
		{"  FRANCE  ", "France"},
		{"united kingdom", "United Kingdom"},
		{"bosnia and herzegovina", "Bosnia And Herzegovina"},
		{"guinea-bissau", "Guinea-bissau"},
		{"élan vital", "Élan Vital"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatName(tt.in))
		})
	}
}

func TestAddVisitedCountry_Form(t *testing.T) {
	atlas := geo.New()

	t.Run("adds formatted country", func(t *testing.T) {
		s, changed, err := State{}.AddVisitedCountry(atlas, "france", OriginForm)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []VisitedCountry{{Name: "France", Cities: []City{}}}, s.Visited)
		assert.True(t, s.IsExpanded("France"))
	})

	t.Run("empty input", func(t *testing.T) {
		s, changed, err := State{}.AddVisitedCountry(atlas, "   ", OriginForm)
		require.ErrorIs(t, err, ErrEmptyName)
		assert.False(t, changed)
		assert.Empty(t, s.Visited)
	})

	t.Run("unknown country", func(t *testing.T) {
		s, changed, err := State{}.AddVisitedCountry(atlas, "atlantis", OriginForm)
		require.ErrorIs(t, err, ErrUnknownCountry)
		assert.False(t, changed)
		assert.Empty(t, s.Visited)
		assert.Equal(t, `"Atlantis" is not a valid country name!`, err.Error())
	})

	t.Run("duplicate in any case", func(t *testing.T) {
		s, _, err := State{}.AddVisitedCountry(atlas, "France", OriginForm)
		require.NoError(t, err)

		s2, changed, err := s.AddVisitedCountry(atlas, "FRANCE", OriginForm)
		require.ErrorIs(t, err, ErrDuplicateCountry)
		assert.True(t, IsValidationError(err))
		assert.False(t, changed)
		assert.Len(t, s2.Visited, 1)
		assert.Equal(t, "France", s2.Visited[0].Name)
	})

	t.Run("retires wishlist entry", func(t *testing.T) {
		start := NewState(nil, DefaultWishlist)
		s, changed, err := start.AddVisitedCountry(atlas, "japan", OriginForm)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []string{"Iceland"}, s.Wishlist)
		assert.Equal(t, []string{"Japan", "Iceland"}, start.Wishlist, "receiver must not change")
	})
}

func TestAddVisitedCountry_MapClick(t *testing.T) {
	atlas := geo.New()
	start := NewState([]VisitedCountry{{Name: "France", Cities: []City{}}}, nil)

	tests := []struct {
		name  string
		input string
	}{
		{"unknown region", "Atlantis"},
		{"already visited", "france"},
		{"blank", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, changed, err := start.AddVisitedCountry(atlas, tt.input, OriginMapClick)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Equal(t, start.Visited, s.Visited)
		})
	}

	t.Run("geography alias stores the reference name", func(t *testing.T) {
		s, changed, err := start.AddVisitedCountry(atlas, "Dem. Rep. Congo", OriginMapClick)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Democratic Republic Of The Congo", s.Visited[1].Name)
	})
}

func TestAddVisitedCountry_Aliases(t *testing.T) {
	atlas := geo.New()

	tests := []struct {
		name   string
		first  string
		second string
	}{
		{"alias after name", "United States", "usa"},
		{"name after alias", "holland", "Netherlands"},
		{"alias after alias", "Czechia", "CZECHIA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, err := State{}.AddVisitedCountry(atlas, tt.first, OriginForm)
			require.NoError(t, err)

			s2, changed, err := s.AddVisitedCountry(atlas, tt.second, OriginForm)
			require.ErrorIs(t, err, ErrDuplicateCountry)
			assert.False(t, changed)
			assert.Len(t, s2.Visited, 1)

			s3, changed, err := s.AddVisitedCountry(atlas, tt.second, OriginMapClick)
			require.NoError(t, err)
			assert.False(t, changed)
			assert.Len(t, s3.Visited, 1)
		})
	}

	t.Run("legacy alias spelling counts as visited", func(t *testing.T) {
		start := NewState([]VisitedCountry{{Name: "Usa", Cities: []City{}}}, nil)
		_, _, err := start.AddVisitedCountry(atlas, "united states", OriginForm)
		require.ErrorIs(t, err, ErrDuplicateCountry)
	})

	t.Run("alias retires wishlisted name", func(t *testing.T) {
		start := NewState(nil, []string{"Czechia", "Japan"})
		s, changed, err := start.AddVisitedCountry(atlas, "czech republic", OriginForm)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []string{"Czech Republic"}, s.VisitedNames())
		assert.Equal(t, []string{"Japan"}, s.Wishlist)
	})
}

func TestRemoveVisitedCountry(t *testing.T) {
	start := NewState([]VisitedCountry{{Name: "France"}, {Name: "Japan"}}, nil)

	s, changed := start.RemoveVisitedCountry("France")
	assert.True(t, changed)
	assert.Equal(t, []string{"Japan"}, s.VisitedNames())

	s2, changed := s.RemoveVisitedCountry("France")
	assert.False(t, changed)
	assert.Equal(t, s.VisitedNames(), s2.VisitedNames())

	_, changed = start.RemoveVisitedCountry("france")
	assert.False(t, changed, "removal matches exact names only")
}

func TestAddToWishlist(t *testing.T) {
	start := NewState([]VisitedCountry{{Name: "France"}, {Name: "United States"}}, []string{"Japan"})

	tests := []struct {
		name    string
		input   string
		changed bool
		want    []string
	}{
		{"blank is ignored", "  ", false, []string{"Japan"}},
		{"duplicate wish", "JAPAN", false, []string{"Japan"}},
		{"already visited", "france", false, []string{"Japan"}},
		{"new entry formatted", "new zealand", true, []string{"Japan", "New Zealand"}},
		{"alias stored as reference name", "holland", true, []string{"Japan", "Netherlands"}},
		{"alias of visited country", "USA", false, []string{"Japan"}},
		{"unknown destination kept", "middle earth", true, []string{"Japan", "Middle Earth"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, changed := start.AddToWishlist(geo.New(), tt.input)
			assert.Equal(t, tt.changed, changed)
			assert.Equal(t, tt.want, s.Wishlist)
		})
	}
}

func TestRemoveFromWishlist(t *testing.T) {
	start := NewState(nil, []string{"Japan", "Iceland"})

	s, changed := start.RemoveFromWishlist("Japan")
	assert.True(t, changed)
	assert.Equal(t, []string{"Iceland"}, s.Wishlist)

	_, changed = s.RemoveFromWishlist("Japan")
	assert.False(t, changed)
}

func TestAddCity(t *testing.T) {
	start := NewState([]VisitedCountry{{Name: "Japan"}, {Name: "France"}}, nil)

	t.Run("appends trimmed city", func(t *testing.T) {
		s, changed := start.AddCity("Japan", "  Kyoto ", "2024-04-01")
		assert.True(t, changed)
		assert.Equal(t, []City{{Name: "Kyoto", VisitDate: "2024-04-01"}}, s.Visited[0].Cities)
		assert.Empty(t, s.Visited[1].Cities)
	})

	t.Run("same city twice in any case", func(t *testing.T) {
		s, _ := start.AddCity("Japan", "Kyoto", "2024-04-01")
		s, changed := s.AddCity("Japan", "KYOTO", "2024-05-01")
		assert.False(t, changed)
		assert.Len(t, s.Visited[0].Cities, 1)
	})

	t.Run("incomplete input", func(t *testing.T) {
		_, changed := start.AddCity("Japan", "", "2024-04-01")
		assert.False(t, changed)
		_, changed = start.AddCity("Japan", "Osaka", "")
		assert.False(t, changed)
	})

	t.Run("unknown country", func(t *testing.T) {
		_, changed := start.AddCity("Peru", "Cusco", "2024-04-01")
		assert.False(t, changed)
	})
}

func TestRemoveCity_OnlyTargetCountry(t *testing.T) {
	start := NewState([]VisitedCountry{
		{Name: "Georgia", Cities: []City{{Name: "Tbilisi", VisitDate: "2023-01-01"}, {Name: "Batumi", VisitDate: "2023-01-05"}}},
		{Name: "Armenia", Cities: []City{{Name: "Tbilisi", VisitDate: "2023-02-01"}}},
	}, nil)

	s, changed := start.RemoveCity("Georgia", "Tbilisi")
	assert.True(t, changed)
	assert.Equal(t, []City{{Name: "Batumi", VisitDate: "2023-01-05"}}, s.Visited[0].Cities)
	assert.Len(t, s.Visited[1].Cities, 1, "other countries keep their cities")

	_, changed = s.RemoveCity("Georgia", "Tbilisi")
	assert.False(t, changed)

	_, changed = s.RemoveCity("Peru", "Lima")
	assert.False(t, changed)
}

func TestToggleCountryExpanded(t *testing.T) {
	start := NewState([]VisitedCountry{{Name: "Japan"}}, nil)
	require.True(t, start.IsExpanded("Japan"))

	s := start.ToggleCountryExpanded("Japan")
	assert.False(t, s.IsExpanded("Japan"))
	assert.True(t, start.IsExpanded("Japan"))

	s = s.ToggleCountryExpanded("Japan")
	assert.True(t, s.IsExpanded("Japan"))
}

func TestFilter(t *testing.T) {
	s := NewState([]VisitedCountry{{Name: "France"}, {Name: "Finland"}, {Name: "Japan"}}, nil)

	assert.Len(t, s.Filter(""), 3)
	assert.Equal(t, "Japan", s.Filter("PAN")[0].Name)
	assert.Len(t, s.Filter("f"), 2)
	assert.Empty(t, s.Filter("zz"))
}

func TestCitiesByDate(t *testing.T) {
	c := VisitedCountry{Name: "Japan", Cities: []City{
		{Name: "Kyoto", VisitDate: "2023-01-01"},
		{Name: "Osaka", VisitDate: "2024-06-01"},
		{Name: "Nara", VisitDate: "2022-12-31"},
	}}

	got := c.CitiesByDate()
	assert.Equal(t, []string{"Osaka", "Kyoto", "Nara"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, "Kyoto", c.Cities[0].Name, "original order untouched")
}
