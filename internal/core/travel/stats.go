package travel

import (
	"strconv"
	"time"
)

// WorldCountryCount is the fixed denominator for the world-explored share.
const WorldCountryCount = 195

// ContinentTally is the continent with the most visited countries.
type ContinentTally struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountryTally is the visited country with the most cities.
type CountryTally struct {
	Name      string `json:"name"`
	CityCount int    `json:"cityCount"`
}

// Stats are the figures derived from a State. Nil pointers mean "none yet".
type Stats struct {
	VisitedCount         int             `json:"visitedCount"`
	WorldPercentage      string          `json:"worldPercentage"`
	ContinentsVisited    int             `json:"continentsVisited"`
	TotalCities          int             `json:"totalCities"`
	WishlistCount        int             `json:"wishlistCount"`
	MostVisitedContinent *ContinentTally `json:"mostVisitedContinent"`
	CountriesThisYear    int             `json:"countriesThisYear"`
	MostExploredCountry  *CountryTally   `json:"mostExploredCountry"`
}

// ComputeStats derives every statistic from s. now decides the current year.
func ComputeStats(s State, atlas Atlas, now time.Time) Stats {
	return Stats{
		VisitedCount:         len(s.Visited),
		WorldPercentage:      WorldPercentage(len(s.Visited)),
		ContinentsVisited:    len(atlas.UniqueContinents(s.VisitedNames())),
		TotalCities:          TotalCities(s),
		WishlistCount:        len(s.Wishlist),
		MostVisitedContinent: MostVisitedContinent(s, atlas),
		CountriesThisYear:    CountriesInYear(s, now.Year()),
		MostExploredCountry:  MostExploredCountry(s),
	}
}

// WorldPercentage formats visited/195 as a percentage with one decimal.
func WorldPercentage(visited int) string {
	pct := float64(visited) / WorldCountryCount * 100
	return strconv.FormatFloat(pct, 'f', 1, 64)
}

// TotalCities sums the cities across all visited countries.
func TotalCities(s State) int {
	total := 0
	for _, c := range s.Visited {
		total += len(c.Cities)
	}
	return total
}

// MostVisitedContinent counts visited countries per continent. Ties go to the
// continent encountered first in stored order.
func MostVisitedContinent(s State, atlas Atlas) *ContinentTally {
	if len(s.Visited) == 0 {
		return nil
	}

	var order []string
	counts := make(map[string]int)
	for _, c := range s.Visited {
		for _, continent := range atlas.UniqueContinents([]string{c.Name}) {
			if _, seen := counts[continent]; !seen {
				order = append(order, continent)
			}
			counts[continent]++
		}
	}

	var best *ContinentTally
	for _, continent := range order {
		if best == nil || counts[continent] > best.Count {
			best = &ContinentTally{Name: continent, Count: counts[continent]}
		}
	}
	return best
}

// CountriesInYear counts countries with at least one city visited in year.
func CountriesInYear(s State, year int) int {
	n := 0
	for _, c := range s.Visited {
		for _, city := range c.Cities {
			if y, ok := visitYear(city.VisitDate); ok && y == year {
				n++
				break
			}
		}
	}
	return n
}

// MostExploredCountry returns the country with the most cities. Ties go to the
// first in stored order; nil when no country has any city.
func MostExploredCountry(s State) *CountryTally {
	var best *CountryTally
	for _, c := range s.Visited {
		if len(c.Cities) == 0 {
			continue
		}
		if best == nil || len(c.Cities) > best.CityCount {
			best = &CountryTally{Name: c.Name, CityCount: len(c.Cities)}
		}
	}
	return best
}

// ParseVisitDate parses a YYYY-MM-DD visit date.
func ParseVisitDate(date string) (time.Time, error) {
	return time.Parse(time.DateOnly, date)
}

func visitYear(date string) (int, bool) {
	t, err := ParseVisitDate(date)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
