package geo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtlas_IsValidCountry(t *testing.T) {
	atlas := New()

	tests := []struct {
		name string
		want bool
	}{
		{"France", true},
		{"france", true},
		{"  Japan ", true},
		{"Bosnia And Herzegovina", true},
		{"Dem. Rep. Congo", true},
		{"United States Of America", true},
		{"Atlantis", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, atlas.IsValidCountry(tt.name))
		})
	}
}

func TestAtlas_Canonical(t *testing.T) {
	atlas := New()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"france", "France", true},
		{"USA", "United States", true},
		{"holland", "Netherlands", true},
		{"Czechia", "Czech Republic", true},
		{"Atlantis", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := atlas.Canonical(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAtlas_TableIntegrity(t *testing.T) {
	atlas := New()
	valid := map[string]bool{
		Africa: true, Antarctica: true, Asia: true, Europe: true,
		NorthAmerica: true, Oceania: true, SouthAmerica: true,
	}
	require.Len(t, valid, ContinentCount)

	seenCodes := map[string]bool{}
	for _, c := range atlas.Countries() {
		assert.True(t, valid[c.Continent], "%s has unknown continent %q", c.Name, c.Continent)
		assert.Len(t, c.Code, 2, c.Name)
		assert.False(t, seenCodes[c.Code], "duplicate code %s", c.Code)
		seenCodes[c.Code] = true
	}

	// aliases must not shadow another country's primary name
	for _, c := range countries {
		got, ok := atlas.Lookup(c.Name)
		require.True(t, ok)
		assert.Equal(t, c.Code, got.Code, c.Name)
	}
}

func TestAtlas_UniqueContinents(t *testing.T) {
	atlas := New()

	got := atlas.UniqueContinents([]string{"France", "Japan", "Germany", "Atlantis", "Peru", "China"})
	assert.Equal(t, []string{Europe, Asia, SouthAmerica}, got)

	assert.Empty(t, atlas.UniqueContinents(nil))
}

func TestAtlas_Flag(t *testing.T) {
	atlas := New()

	assert.Equal(t, "\U0001F1EB\U0001F1F7", atlas.Flag("France"))
	assert.Equal(t, "\U0001F1EF\U0001F1F5", atlas.Flag("japan"))
	assert.Equal(t, UnknownFlag, atlas.Flag("Atlantis"))
	assert.Equal(t, UnknownFlag, FlagForCode("1X"))
	assert.Equal(t, UnknownFlag, FlagForCode("USA"))
}

func TestAtlas_CountriesSorted(t *testing.T) {
	list := New().Countries()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, strings.Compare(list[i-1].Name, list[i].Name), 0)
	}
}
