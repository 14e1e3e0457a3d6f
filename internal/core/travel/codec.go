package travel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Format identifies the on-disk shape of the visited-countries document.
type Format string

const (
	// FormatStructured is an array of {name, cities} records.
	FormatStructured Format = "structured"
	// FormatLegacy is a flat array of country-name strings.
	FormatLegacy Format = "legacy"
)

// DecodeVisited decodes a persisted visited-countries document. The structured
// shape is tried first, then the legacy flat string array, which is migrated
// to records with no cities. Cities are always non-nil in the result.
func DecodeVisited(raw []byte) ([]VisitedCountry, Format, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []VisitedCountry{}, FormatStructured, nil
	}

	var structured []VisitedCountry
	structErr := json.Unmarshal(raw, &structured)
	if structErr == nil {
		return normalize(structured), FormatStructured, nil
	}

	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, "", fmt.Errorf("decode visited countries: %w", errors.Join(structErr, err))
	}

	migrated := make([]VisitedCountry, 0, len(legacy))
	for _, name := range legacy {
		migrated = append(migrated, VisitedCountry{Name: name, Cities: []City{}})
	}
	return migrated, FormatLegacy, nil
}

// EncodeVisited encodes visited countries in the structured shape.
func EncodeVisited(visited []VisitedCountry) ([]byte, error) {
	return json.Marshal(normalize(visited))
}

// DecodeWishlist decodes a persisted wishlist document.
func DecodeWishlist(raw []byte) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}, nil
	}

	var wishlist []string
	if err := json.Unmarshal(raw, &wishlist); err != nil {
		return nil, fmt.Errorf("decode wishlist: %w", err)
	}
	return wishlist, nil
}

func normalize(visited []VisitedCountry) []VisitedCountry {
	out := make([]VisitedCountry, len(visited))
	for i, c := range visited {
		cities := c.Cities
		if cities == nil {
			cities = []City{}
		}
		out[i] = VisitedCountry{Name: c.Name, Cities: cities}
	}
	return out
}
