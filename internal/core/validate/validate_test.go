package validate

import (
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)

func TestCityName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Kyoto", false},
		{"valid with spaces", "Rio de Janeiro", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CityName(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "CityName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestVisitDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"today", "2025-03-10", ""},
		{"past", "1999-12-31", ""},
		{"padded", " 2024-01-01 ", ""},
		{"tomorrow", "2025-03-11", "future"},
		{"empty", "", "required"},
		{"wrong layout", "10/03/2025", "2024-05-31"},
		{"impossible day", "2025-02-30", "2024-05-31"},
	}

	check := VisitDate(today)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := check(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCityFields(t *testing.T) {
	require.NoError(t, CityFields("Kyoto", "2025-01-01", today))

	err := CityFields(" ", "tomorrow", today)
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "city", fieldErrs[0].Field)
	assert.Equal(t, "date", fieldErrs[1].Field)
}
