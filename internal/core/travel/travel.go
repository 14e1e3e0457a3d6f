// Package travel defines the travel log domain: visited countries with their
// cities, the wishlist, the rules that keep them consistent, and the
// statistics derived from them.
//
// State is a value. Mutators never modify their receiver; they return a new
// State together with a flag reporting whether anything changed.
package travel

import (
	"slices"
	"strings"
)

// Storage keys for the persisted documents.
const (
	KeyVisitedCountries = "visitedCountries"
	KeyWishlist         = "wishlist"
	KeyDarkMode         = "darkMode"
)

// DefaultWishlist seeds the wishlist when nothing has been stored yet.
var DefaultWishlist = []string{"Japan", "Iceland"}

// Origin identifies where an add-country request came from.
type Origin string

const (
	// OriginForm is free-text input typed by the user. Validation failures are reported.
	OriginForm Origin = "form"
	// OriginMapClick comes from the map's own geography data. Failures are ignored.
	OriginMapClick Origin = "map-click"
)

// Atlas is the country reference data the domain validates against.
type Atlas interface {
	IsValidCountry(name string) bool
	UniqueContinents(names []string) []string
	// Canonical returns the reference spelling for a country name or alias.
	Canonical(name string) (string, bool)
}

// CanonicalName formats raw and, when it names a known country under any
// alias, resolves it to that country's formatted reference name.
func CanonicalName(atlas Atlas, raw string) string {
	name := FormatName(raw)
	if canonical, ok := atlas.Canonical(name); ok {
		return FormatName(canonical)
	}
	return name
}

// sameCountry reports whether a and b name the same country.
func sameCountry(atlas Atlas, a, b string) bool {
	return strings.EqualFold(CanonicalName(atlas, a), CanonicalName(atlas, b))
}

// City is a place visited within a country.
type City struct {
	Name      string `json:"name"      yaml:"name"`
	VisitDate string `json:"visitDate" yaml:"visitDate"` // YYYY-MM-DD
}

// VisitedCountry is a country the user has travelled to.
type VisitedCountry struct {
	Name   string `json:"name"   yaml:"name"`
	Cities []City `json:"cities" yaml:"cities"`
}

// HasCity reports whether the country already lists a city of that name,
// compared case-insensitively.
func (c VisitedCountry) HasCity(name string) bool {
	return slices.ContainsFunc(c.Cities, func(city City) bool {
		return strings.EqualFold(city.Name, name)
	})
}

// CitiesByDate returns the cities sorted by visit date, newest first.
func (c VisitedCountry) CitiesByDate() []City {
	out := slices.Clone(c.Cities)
	slices.SortStableFunc(out, func(a, b City) int {
		return strings.Compare(b.VisitDate, a.VisitDate)
	})
	return out
}

// State is the aggregate root for a travel log.
type State struct {
	Visited  []VisitedCountry
	Wishlist []string

	// Expanded caches whether a country's city list is shown. It is view
	// state and is never persisted.
	Expanded map[string]bool
}

// NewState builds a State from loaded lists, expanding every country.
func NewState(visited []VisitedCountry, wishlist []string) State {
	s := State{
		Visited:  visited,
		Wishlist: wishlist,
		Expanded: make(map[string]bool, len(visited)),
	}
	for _, c := range visited {
		s.Expanded[c.Name] = true
	}
	return s.Clone()
}

// Clone returns a deep copy so callers can hand out State without aliasing.
func (s State) Clone() State {
	out := State{
		Visited:  make([]VisitedCountry, len(s.Visited)),
		Wishlist: make([]string, len(s.Wishlist)),
		Expanded: make(map[string]bool, len(s.Expanded)),
	}
	for i, c := range s.Visited {
		cities := make([]City, len(c.Cities))
		copy(cities, c.Cities)
		out.Visited[i] = VisitedCountry{Name: c.Name, Cities: cities}
	}
	copy(out.Wishlist, s.Wishlist)
	for k, v := range s.Expanded {
		out.Expanded[k] = v
	}
	return out
}

// Country returns the visited country with exactly the given name.
func (s State) Country(name string) (VisitedCountry, bool) {
	i := s.indexOf(name)
	if i < 0 {
		return VisitedCountry{}, false
	}
	return s.Visited[i], true
}

// IsVisited reports whether name is on the visited list, ignoring case.
func (s State) IsVisited(name string) bool {
	return slices.ContainsFunc(s.Visited, func(c VisitedCountry) bool {
		return strings.EqualFold(c.Name, name)
	})
}

// FindVisited returns the stored spelling of the visited country that name
// refers to, resolving aliases through atlas.
func (s State) FindVisited(atlas Atlas, name string) (string, bool) {
	for _, c := range s.Visited {
		if sameCountry(atlas, c.Name, name) {
			return c.Name, true
		}
	}
	return "", false
}

// IsWishlisted reports whether name is on the wishlist, ignoring case.
func (s State) IsWishlisted(name string) bool {
	return slices.ContainsFunc(s.Wishlist, func(w string) bool {
		return strings.EqualFold(w, name)
	})
}

// VisitedNames lists visited country names in stored order.
func (s State) VisitedNames() []string {
	names := make([]string, len(s.Visited))
	for i, c := range s.Visited {
		names[i] = c.Name
	}
	return names
}

// IsExpanded reports whether the country's city list is shown.
func (s State) IsExpanded(name string) bool {
	return s.Expanded[name]
}

// Filter returns the visited countries whose name contains query, ignoring
// case. An empty query matches everything.
func (s State) Filter(query string) []VisitedCountry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(s.Visited)
	}

	var out []VisitedCountry
	for _, c := range s.Visited {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s State) indexOf(name string) int {
	return slices.IndexFunc(s.Visited, func(c VisitedCountry) bool {
		return c.Name == name
	})
}
