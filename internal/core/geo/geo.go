// Package geo holds the static country reference data used to validate
// country names, group them by continent, and render their flags.
package geo

import (
	"slices"
	"strings"
)

// UnknownFlag is rendered for names that are not in the reference table.
const UnknownFlag = "\U0001F3F3️" // 🏳️

// Atlas answers questions about the reference table. Lookups are
// case-insensitive and accept the aliases used by map geography data.
type Atlas struct {
	byName map[string]Country
}

// New builds an Atlas over the built-in reference table.
func New() *Atlas {
	byName := make(map[string]Country, len(countries)*2)
	for _, c := range countries {
		byName[key(c.Name)] = c
		for _, alias := range c.Aliases {
			byName[key(alias)] = c
		}
	}
	return &Atlas{byName: byName}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the reference row for name.
func (a *Atlas) Lookup(name string) (Country, bool) {
	c, ok := a.byName[key(name)]
	return c, ok
}

// Canonical returns the reference name for a country name or alias.
func (a *Atlas) Canonical(name string) (string, bool) {
	c, ok := a.Lookup(name)
	return c.Name, ok
}

// IsValidCountry reports whether name (or one of its aliases) is a known country.
func (a *Atlas) IsValidCountry(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Continent returns the continent of the named country.
func (a *Atlas) Continent(name string) (string, bool) {
	c, ok := a.Lookup(name)
	if !ok {
		return "", false
	}
	return c.Continent, true
}

// UniqueContinents maps every name to its continent and returns the distinct
// set in first-encountered order. Unknown names are skipped.
func (a *Atlas) UniqueContinents(names []string) []string {
	var out []string
	for _, name := range names {
		continent, ok := a.Continent(name)
		if !ok || slices.Contains(out, continent) {
			continue
		}
		out = append(out, continent)
	}
	return out
}

// Countries returns a copy of the reference table sorted by name.
func (a *Atlas) Countries() []Country {
	out := slices.Clone(countries)
	slices.SortFunc(out, func(x, y Country) int {
		return strings.Compare(x.Name, y.Name)
	})
	return out
}

// Flag returns the emoji flag for the named country.
func (a *Atlas) Flag(name string) string {
	c, ok := a.Lookup(name)
	if !ok {
		return UnknownFlag
	}
	return FlagForCode(c.Code)
}

// FlagForCode converts an ISO 3166-1 alpha-2 code into a pair of regional
// indicator symbols.
func FlagForCode(code string) string {
	if len(code) != 2 {
		return UnknownFlag
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return UnknownFlag
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
