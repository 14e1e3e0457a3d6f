package passport

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/passport/internal/core/travel"
	"github.com/colonyops/passport/internal/data/stores"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantVisited  []string
		wantWishlist []string
		wantErr      bool
	}{
		{
			name:        "legacy array",
			raw:         `["France","Peru"]`,
			wantVisited: []string{"France", "Peru"},
		},
		{
			name:        "structured array",
			raw:         `[{"name":"Japan","cities":[{"name":"Kyoto","visitDate":"2024-01-01"}]}]`,
			wantVisited: []string{"Japan"},
		},
		{
			name:         "document",
			raw:          `{"version":1,"visitedCountries":["Chile"],"wishlist":["Iceland"]}`,
			wantVisited:  []string{"Chile"},
			wantWishlist: []string{"Iceland"},
		},
		{
			name:    "future version",
			raw:     `{"version":9}`,
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "  ",
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     "France",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			names := make([]string, len(doc.Visited))
			for i, c := range doc.Visited {
				names[i] = c.Name
			}
			assert.Equal(t, tt.wantVisited, names)
			if tt.wantWishlist != nil {
				assert.Equal(t, tt.wantWishlist, doc.Wishlist)
			}
		})
	}
}

func TestImport_MergesAndSkips(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	_, err := svc.AddVisitedCountry(ctx, "Japan", travel.OriginForm)
	require.NoError(t, err)

	dark := true
	res, err := svc.Import(ctx, Document{
		Visited: []travel.VisitedCountry{
			{Name: "japan", Cities: []travel.City{{Name: "Kyoto", VisitDate: "2024-04-01"}}},
			{Name: "Peru", Cities: []travel.City{{Name: "Lima", VisitDate: "2022-01-01"}, {Name: "lima", VisitDate: "2022-01-02"}}},
			{Name: "Atlantis"},
		},
		Wishlist: []string{"Peru", "Chile"},
		DarkMode: &dark,
	})
	require.NoError(t, err)

	assert.Equal(t, ImportResult{CountriesAdded: 1, CitiesAdded: 2, WishesAdded: 1, Skipped: 1}, res)

	st := svc.State()
	assert.Equal(t, []string{"Japan", "Peru"}, st.VisitedNames())
	japan, _ := st.Country("Japan")
	assert.True(t, japan.HasCity("Kyoto"), "cities merge into the stored spelling")
	assert.Equal(t, []string{"Iceland", "Chile"}, st.Wishlist)

	gotDark, err := svc.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, gotDark)
}

func TestImport_CountryEntriesNeverReject(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    ImportResult
	}{
		{name: "blank name", country: "  ", want: ImportResult{Skipped: 1}},
		{name: "unknown country", country: "Narnia", want: ImportResult{Skipped: 1}},
		{name: "alias of a visited country", country: "usa", want: ImportResult{CitiesAdded: 1}},
		{name: "new country by alias", country: "holland", want: ImportResult{CountriesAdded: 1, CitiesAdded: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService(t, nil)
			_, err := svc.AddVisitedCountry(ctx, "United States", travel.OriginForm)
			require.NoError(t, err)

			res, err := svc.Import(ctx, Document{Visited: []travel.VisitedCountry{
				{Name: tt.country, Cities: []travel.City{{Name: "Springfield", VisitDate: "2020-05-05"}}},
			}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestImport_StorageFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store := &failingKV{KV: stores.NewMemoryKVStore()}
	svc := newTestService(t, store)
	before := svc.State()

	store.arm()
	res, err := svc.Import(ctx, Document{Visited: []travel.VisitedCountry{{Name: "Peru"}}})
	require.Error(t, err)
	assert.Equal(t, ImportResult{}, res)
	assert.Equal(t, before.VisitedNames(), svc.State().VisitedNames())
}

func TestExport_ImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestService(t, nil)

	_, err := src.AddVisitedCountry(ctx, "Peru", travel.OriginForm)
	require.NoError(t, err)
	_, err = src.AddCity(ctx, "Peru", "Cusco", "2023-07-01")
	require.NoError(t, err)

	doc, err := src.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, DocumentVersion, doc.Version)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	parsed, err := ParseDocument(raw)
	require.NoError(t, err)

	dst := newTestService(t, nil)
	_, err = dst.Import(ctx, parsed)
	require.NoError(t, err)

	assert.Equal(t, src.State().Visited, dst.State().Visited)
	assert.Equal(t, src.State().Wishlist, dst.State().Wishlist)
}
