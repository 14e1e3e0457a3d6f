package travel

import (
	"slices"
	"strings"
)

// AddVisitedCountry appends a country to the visited list and retires it from
// the wishlist.
//
// Form input is validated and rejected with a *ValidationError. Map clicks
// that are unknown or already visited are ignored without error.
func (s State) AddVisitedCountry(atlas Atlas, raw string, origin Origin) (State, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		if origin == OriginForm {
			return s, false, &ValidationError{Reason: ErrEmptyName}
		}
		return s, false, nil
	}

	if !atlas.IsValidCountry(trimmed) {
		if origin == OriginForm {
			return s, false, &ValidationError{Reason: ErrUnknownCountry, Name: FormatName(trimmed)}
		}
		return s, false, nil
	}

	name := CanonicalName(atlas, trimmed)
	if _, ok := s.FindVisited(atlas, name); ok {
		if origin == OriginForm {
			return s, false, &ValidationError{Reason: ErrDuplicateCountry, Name: name}
		}
		return s, false, nil
	}

	next := s.Clone()
	next.Visited = append(next.Visited, VisitedCountry{Name: name, Cities: []City{}})
	next.Wishlist = slices.DeleteFunc(next.Wishlist, func(w string) bool {
		return sameCountry(atlas, w, name)
	})
	next.Expanded[name] = true

	return next, true, nil
}

// RemoveVisitedCountry drops the country with exactly the given name.
func (s State) RemoveVisitedCountry(name string) (State, bool) {
	if s.indexOf(name) < 0 {
		return s, false
	}

	next := s.Clone()
	next.Visited = slices.DeleteFunc(next.Visited, func(c VisitedCountry) bool {
		return c.Name == name
	})
	delete(next.Expanded, name)
	return next, true
}

// AddToWishlist appends a formatted name to the wishlist unless it is blank,
// already wishlisted, or already visited. Known countries are stored under
// their reference name whichever alias was given.
func (s State) AddToWishlist(atlas Atlas, raw string) (State, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return s, false
	}

	name := CanonicalName(atlas, trimmed)
	wished := slices.ContainsFunc(s.Wishlist, func(w string) bool {
		return sameCountry(atlas, w, name)
	})
	if _, visited := s.FindVisited(atlas, name); wished || visited {
		return s, false
	}

	next := s.Clone()
	next.Wishlist = append(next.Wishlist, name)
	return next, true
}

// RemoveFromWishlist drops the wishlist entry with exactly the given name.
func (s State) RemoveFromWishlist(name string) (State, bool) {
	if !slices.Contains(s.Wishlist, name) {
		return s, false
	}

	next := s.Clone()
	next.Wishlist = slices.DeleteFunc(next.Wishlist, func(w string) bool {
		return w == name
	})
	return next, true
}

// AddCity appends a city to the named country. Incomplete input, an unknown
// country, or a city already listed (ignoring case) leave the state as is.
func (s State) AddCity(country, rawCity, visitDate string) (State, bool) {
	city := strings.TrimSpace(rawCity)
	if city == "" || strings.TrimSpace(visitDate) == "" {
		return s, false
	}

	i := s.indexOf(country)
	if i < 0 || s.Visited[i].HasCity(city) {
		return s, false
	}

	next := s.Clone()
	next.Visited[i].Cities = append(next.Visited[i].Cities, City{Name: city, VisitDate: visitDate})
	return next, true
}

// RemoveCity drops the city with exactly the given name from the named
// country only.
func (s State) RemoveCity(country, city string) (State, bool) {
	i := s.indexOf(country)
	if i < 0 {
		return s, false
	}

	match := func(c City) bool { return c.Name == city }
	if !slices.ContainsFunc(s.Visited[i].Cities, match) {
		return s, false
	}

	next := s.Clone()
	next.Visited[i].Cities = slices.DeleteFunc(next.Visited[i].Cities, match)
	return next, true
}

// ToggleCountryExpanded flips the city-list visibility flag for name.
func (s State) ToggleCountryExpanded(name string) State {
	next := s.Clone()
	next.Expanded[name] = !next.Expanded[name]
	return next
}
