package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVisited(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantFormat Format
		want       []VisitedCountry
		wantErr    bool
	}{
		{
			name:       "empty document",
			raw:        "",
			wantFormat: FormatStructured,
			want:       []VisitedCountry{},
		},
		{
			name:       "empty array",
			raw:        "[]",
			wantFormat: FormatStructured,
			want:       []VisitedCountry{},
		},
		{
			name:       "structured",
			raw:        `[{"name":"Japan","cities":[{"name":"Kyoto","visitDate":"2024-04-01"}]}]`,
			wantFormat: FormatStructured,
			want:       []VisitedCountry{{Name: "Japan", Cities: []City{{Name: "Kyoto", VisitDate: "2024-04-01"}}}},
		},
		{
			name:       "structured without cities",
			raw:        `[{"name":"Japan"}]`,
			wantFormat: FormatStructured,
			want:       []VisitedCountry{{Name: "Japan", Cities: []City{}}},
		},
		{
			name:       "legacy strings",
			raw:        `["France","Japan"]`,
			wantFormat: FormatLegacy,
			want:       []VisitedCountry{{Name: "France", Cities: []City{}}, {Name: "Japan", Cities: []City{}}},
		},
		{
			name:    "garbage",
			raw:     `{"name":"France"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format, err := DecodeVisited([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeVisited_RoundTrip(t *testing.T) {
	visited := []VisitedCountry{
		{Name: "Japan", Cities: []City{{Name: "Kyoto", VisitDate: "2024-04-01"}, {Name: "Osaka", VisitDate: "2024-04-03"}}},
		{Name: "France", Cities: nil},
	}

	raw, err := EncodeVisited(visited)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cities":[]`, "nil cities encode as an empty array")

	got, format, err := DecodeVisited(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatStructured, format)
	assert.Equal(t, normalize(visited), got)
}

func TestEncodeVisited_MigratesLegacy(t *testing.T) {
	migrated, format, err := DecodeVisited([]byte(`["Peru"]`))
	require.NoError(t, err)
	require.Equal(t, FormatLegacy, format)

	raw, err := EncodeVisited(migrated)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Peru","cities":[]}]`, string(raw))
}

func TestDecodeWishlist(t *testing.T) {
	got, err := DecodeWishlist([]byte(`["Japan","Iceland"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Japan", "Iceland"}, got)

	got, err = DecodeWishlist(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = DecodeWishlist([]byte(`{}`))
	assert.Error(t, err)
}
