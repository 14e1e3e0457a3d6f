package travel

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/geo"
)

func TestWorldPercentage(t *testing.T) {
	tests := []struct {
		visited int
		want    string
	}{
		{0, "0.0"},
		{1, "0.5"},
		{39, "20.0"},
		{195, "100.0"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.visited), func(t *testing.T) {
			assert.Equal(t, tt.want, WorldPercentage(tt.visited))
		})
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(NewState(nil, DefaultWishlist), geo.New(), time.Now())

	assert.Equal(t, 0, stats.VisitedCount)
	assert.Equal(t, "0.0", stats.WorldPercentage)
	assert.Equal(t, 0, stats.ContinentsVisited)
	assert.Equal(t, 0, stats.TotalCities)
	assert.Equal(t, 2, stats.WishlistCount)
	assert.Nil(t, stats.MostVisitedContinent)
	assert.Nil(t, stats.MostExploredCountry)
	assert.Equal(t, 0, stats.CountriesThisYear)
}

func TestComputeStats_AfterFirstAdd(t *testing.T) {
	atlas := geo.New()
	s, _, err := State{}.AddVisitedCountry(atlas, "france", OriginForm)
	require.NoError(t, err)

	stats := ComputeStats(s, atlas, time.Now())
	assert.Equal(t, 1, stats.VisitedCount)
	assert.Equal(t, "0.5", stats.WorldPercentage)
	assert.Equal(t, &ContinentTally{Name: geo.Europe, Count: 1}, stats.MostVisitedContinent)
	assert.Nil(t, stats.MostExploredCountry, "no country has cities yet")
}

func TestComputeStats_ThisYearAndMostExplored(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	s := NewState([]VisitedCountry{
		{Name: "France", Cities: []City{}},
		{Name: "Japan", Cities: []City{
			{Name: "Tokyo", VisitDate: "2025-03-10"},
			{Name: "Kyoto", VisitDate: "2024-11-02"},
		}},
	}, nil)

	stats := ComputeStats(s, geo.New(), now)
	assert.Equal(t, 1, stats.CountriesThisYear)
	assert.Equal(t, &CountryTally{Name: "Japan", CityCount: 2}, stats.MostExploredCountry)
	assert.Equal(t, 2, stats.TotalCities)
	assert.Equal(t, 2, stats.ContinentsVisited)
}

func TestMostVisitedContinent_TieGoesToFirstEncountered(t *testing.T) {
	atlas := geo.New()
	s := NewState([]VisitedCountry{
		{Name: "Japan"}, {Name: "France"}, {Name: "Germany"}, {Name: "China"},
	}, nil)

	got := MostVisitedContinent(s, atlas)
	require.NotNil(t, got)
	assert.Equal(t, geo.Asia, got.Name)
	assert.Equal(t, 2, got.Count)

	s, _, _ = s.AddVisitedCountry(atlas, "Italy", OriginForm)
	got = MostVisitedContinent(s, atlas)
	assert.Equal(t, geo.Europe, got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMostVisitedContinent_UnknownNamesOnly(t *testing.T) {
	s := NewState([]VisitedCountry{{Name: "Atlantis"}}, nil)
	assert.Nil(t, MostVisitedContinent(s, geo.New()))
}

func TestMostExploredCountry_TieGoesToFirst(t *testing.T) {
	s := NewState([]VisitedCountry{
		{Name: "Peru", Cities: []City{{Name: "Lima", VisitDate: "2020-01-01"}}},
		{Name: "Chile", Cities: []City{{Name: "Santiago", VisitDate: "2020-02-01"}}},
	}, nil)

	assert.Equal(t, &CountryTally{Name: "Peru", CityCount: 1}, MostExploredCountry(s))
}

func TestCountriesInYear_IgnoresMalformedDates(t *testing.T) {
	s := NewState([]VisitedCountry{
		{Name: "Peru", Cities: []City{{Name: "Lima", VisitDate: "not-a-date"}}},
		{Name: "Chile", Cities: []City{
			{Name: "Santiago", VisitDate: "2021-02-01"},
			{Name: "Valparaiso", VisitDate: "2021-02-03"},
		}},
	}, nil)

	assert.Equal(t, 1, CountriesInYear(s, 2021))
	assert.Equal(t, 0, CountriesInYear(s, 2022))
}
