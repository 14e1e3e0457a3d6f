package passport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/passport/internal/core/travel"
)

// DocumentVersion is the current export document version.
const DocumentVersion = 1

// Document is the portable form of a travel log.
type Document struct {
	Version    int                     `json:"version"          yaml:"version"`
	ExportedAt time.Time               `json:"exportedAt"       yaml:"exportedAt"`
	Visited    []travel.VisitedCountry `json:"visitedCountries" yaml:"visitedCountries"`
	Wishlist   []string                `json:"wishlist"         yaml:"wishlist"`
	DarkMode   *bool                   `json:"darkMode,omitempty" yaml:"darkMode,omitempty"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	CountriesAdded int `json:"countriesAdded"`
	CitiesAdded    int `json:"citiesAdded"`
	WishesAdded    int `json:"wishesAdded"`
	Skipped        int `json:"skipped"`
}

// ParseDocument accepts an exported Document or a bare visited-countries
// array in either the structured or the legacy format.
func ParseDocument(raw []byte) (Document, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("parse document: empty input")
	}

	if raw[0] == '[' {
		visited, _, err := travel.DecodeVisited(raw)
		if err != nil {
			return Document{}, err
		}
		return Document{Version: DocumentVersion, Visited: visited}, nil
	}

	var doc struct {
		Version    int             `json:"version"`
		ExportedAt time.Time       `json:"exportedAt"`
		Visited    json.RawMessage `json:"visitedCountries"`
		Wishlist   json.RawMessage `json:"wishlist"`
		DarkMode   *bool           `json:"darkMode"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	if doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("parse document: unsupported version %d", doc.Version)
	}

	visited, _, err := travel.DecodeVisited(doc.Visited)
	if err != nil {
		return Document{}, err
	}
	wishlist, err := travel.DecodeWishlist(doc.Wishlist)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Version:    DocumentVersion,
		ExportedAt: doc.ExportedAt,
		Visited:    visited,
		Wishlist:   wishlist,
		DarkMode:   doc.DarkMode,
	}, nil
}

// Export captures the current travel log.
func (s *TravelService) Export(ctx context.Context) (Document, error) {
	dark, err := s.DarkMode(ctx)
	if err != nil {
		return Document{}, err
	}

	st := s.State()
	return Document{
		Version:    DocumentVersion,
		ExportedAt: s.now().UTC(),
		Visited:    st.Visited,
		Wishlist:   st.Wishlist,
		DarkMode:   &dark,
	}, nil
}

// Import merges doc into the travel log. Countries go through the map-click
// path, so unknown or already visited ones are skipped quietly. Cities are
// merged into whichever spelling of the country is stored.
func (s *TravelService) Import(ctx context.Context, doc Document) (ImportResult, error) {
	var res ImportResult

	_, err := s.apply(ctx, "import", func(st travel.State) (travel.State, bool, error) {
		for _, c := range doc.Visited {
			next, added, err := st.AddVisitedCountry(s.atlas, c.Name, travel.OriginMapClick)
			if err != nil {
				return st, false, fmt.Errorf("import %q: %w", c.Name, err)
			}
			if added {
				res.CountriesAdded++
			}
			st = next

			name, ok := st.FindVisited(s.atlas, c.Name)
			if !ok {
				res.Skipped++
				continue
			}

			for _, city := range c.Cities {
				next, added := st.AddCity(name, city.Name, city.VisitDate)
				if added {
					res.CitiesAdded++
				}
				st = next
			}
		}

		for _, w := range doc.Wishlist {
			next, added := st.AddToWishlist(s.atlas, w)
			if added {
				res.WishesAdded++
			}
			st = next
		}

		changed := res.CountriesAdded+res.CitiesAdded+res.WishesAdded > 0
		return st, changed, nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	if doc.DarkMode != nil {
		if err := s.SetDarkMode(ctx, *doc.DarkMode); err != nil {
			return res, err
		}
	}

	s.log.Info().
		Int("countries", res.CountriesAdded).
		Int("cities", res.CitiesAdded).
		Int("wishes", res.WishesAdded).
		Int("skipped", res.Skipped).
		Msg("import finished")
	return res, nil
}
