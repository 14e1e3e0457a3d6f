package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/geo"
	"github.com/colonyops/passport/internal/core/travel"
)

var checkNow = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func messySnapshot() Snapshot {
	return Snapshot{
		Format: travel.FormatStructured,
		Visited: []travel.VisitedCountry{
			{Name: "Japan", Cities: []travel.City{
				{Name: "Kyoto", VisitDate: "2024-04-01"},
				{Name: "kyoto", VisitDate: "2024-04-02"},
			}},
			{Name: "JAPAN", Cities: []travel.City{{Name: "Osaka", VisitDate: "2024-04-03"}}},
			{Name: "Atlantis", Cities: []travel.City{{Name: "Poseidonia", VisitDate: "someday"}}},
			{Name: "Peru", Cities: []travel.City{{Name: "Lima", VisitDate: "2030-01-01"}}},
		},
		Wishlist: []string{"Iceland", "Peru", "iceland"},
	}
}

func itemsWithStatus(r Result, s Status) []string {
	var labels []string
	for _, item := range r.Items {
		if item.Status == s {
			labels = append(labels, item.Label)
		}
	}
	return labels
}

func TestIntegrityCheck_Clean(t *testing.T) {
	snap := Snapshot{
		Format:   travel.FormatStructured,
		Visited:  []travel.VisitedCountry{{Name: "France", Cities: []travel.City{{Name: "Paris", VisitDate: "2020-01-01"}}}},
		Wishlist: []string{"Japan"},
	}

	result := NewIntegrityCheck(snap, geo.New(), checkNow, nil).Run(context.Background())

	assert.Equal(t, "Travel Data", result.Name)
	assert.Empty(t, itemsWithStatus(result, StatusFail))
	assert.Empty(t, itemsWithStatus(result, StatusWarn))
}

func TestIntegrityCheck_ReportsProblems(t *testing.T) {
	result := NewIntegrityCheck(messySnapshot(), geo.New(), checkNow, nil).Run(context.Background())

	assert.ElementsMatch(t,
		[]string{"JAPAN", "Japan / kyoto", "Peru", "iceland"},
		itemsWithStatus(result, StatusFail))
	assert.ElementsMatch(t,
		[]string{"Atlantis", "Atlantis / Poseidonia", "Peru / Lima"},
		itemsWithStatus(result, StatusWarn))
	assert.Equal(t, 4, CountFixable([]Result{result}))
}

func TestIntegrityCheck_LegacyFormatIsFixable(t *testing.T) {
	snap := Snapshot{Format: travel.FormatLegacy, Visited: []travel.VisitedCountry{{Name: "France"}}}

	result := NewIntegrityCheck(snap, geo.New(), checkNow, nil).Run(context.Background())

	require.Equal(t, []string{"storage format"}, itemsWithStatus(result, StatusWarn))
	assert.Equal(t, 1, CountFixable([]Result{result}))
}

func TestIntegrityCheck_Autofix(t *testing.T) {
	var saved *Snapshot
	fix := func(_ context.Context, repaired Snapshot) error {
		saved = &repaired
		return nil
	}

	result := NewIntegrityCheck(messySnapshot(), geo.New(), checkNow, fix).Run(context.Background())

	require.NotNil(t, saved)
	assert.Empty(t, itemsWithStatus(result, StatusFail))
	assert.Len(t, itemsWithStatus(result, StatusWarn), 3, "unfixable warnings remain")
	assert.Zero(t, CountFixable([]Result{result}))
}

func TestIntegrityCheck_AutofixFailure(t *testing.T) {
	fix := func(context.Context, Snapshot) error { return assert.AnError }

	result := NewIntegrityCheck(messySnapshot(), geo.New(), checkNow, fix).Run(context.Background())

	assert.Contains(t, itemsWithStatus(result, StatusFail), "autofix")
}

func TestIntegrityCheck_NothingToFixSkipsSave(t *testing.T) {
	called := false
	fix := func(context.Context, Snapshot) error { called = true; return nil }

	snap := Snapshot{Format: travel.FormatStructured, Visited: []travel.VisitedCountry{}}
	NewIntegrityCheck(snap, geo.New(), checkNow, fix).Run(context.Background())

	assert.False(t, called)
}

func TestRepair(t *testing.T) {
	got := Repair(messySnapshot(), geo.New())

	assert.Equal(t, travel.FormatStructured, got.Format)
	require.Len(t, got.Visited, 3)
	assert.Equal(t, "Japan", got.Visited[0].Name)
	assert.Equal(t, []travel.City{
		{Name: "Kyoto", VisitDate: "2024-04-01"},
		{Name: "Osaka", VisitDate: "2024-04-03"},
	}, got.Visited[0].Cities)
	assert.Equal(t, "Atlantis", got.Visited[1].Name, "unknown countries are kept")
	assert.Equal(t, []string{"Iceland"}, got.Wishlist)
}

func TestRepair_Empty(t *testing.T) {
	got := Repair(Snapshot{}, geo.New())
	assert.NotNil(t, got.Visited)
	assert.NotNil(t, got.Wishlist)
}

func TestIntegrityCheck_AliasDuplicates(t *testing.T) {
	snap := Snapshot{
		Format: travel.FormatStructured,
		Visited: []travel.VisitedCountry{
			{Name: "United States", Cities: []travel.City{{Name: "Boston", VisitDate: "2023-05-01"}}},
			{Name: "Usa", Cities: []travel.City{{Name: "Denver", VisitDate: "2023-06-01"}}},
		},
		Wishlist: []string{"United States Of America", "Czechia", "Czech Republic"},
	}

	result := NewIntegrityCheck(snap, geo.New(), checkNow, nil).Run(context.Background())
	assert.ElementsMatch(t,
		[]string{"Usa", "United States Of America", "Czech Republic"},
		itemsWithStatus(result, StatusFail))

	got := Repair(snap, geo.New())
	require.Len(t, got.Visited, 1)
	assert.Equal(t, "United States", got.Visited[0].Name)
	assert.Len(t, got.Visited[0].Cities, 2)
	assert.Equal(t, []string{"Czechia"}, got.Wishlist)
}
