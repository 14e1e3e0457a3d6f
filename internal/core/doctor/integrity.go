package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/colonyops/passport/internal/core/travel"
)

// Snapshot is the travel data exactly as it was read from storage, before
// any in-memory normalization.
type Snapshot struct {
	Visited  []travel.VisitedCountry
	Wishlist []string
	Format   travel.Format
}

// FixFunc persists a repaired snapshot.
type FixFunc func(ctx context.Context, repaired Snapshot) error

// IntegrityCheck looks for stored data that breaks the travel log's rules.
// Such data only appears through hand edits, imports of foreign files, or
// older releases.
type IntegrityCheck struct {
	snap  Snapshot
	atlas travel.Atlas
	now   time.Time
	fix   FixFunc
}

// NewIntegrityCheck creates an integrity check. A nil fix only reports.
func NewIntegrityCheck(snap Snapshot, atlas travel.Atlas, now time.Time, fix FixFunc) *IntegrityCheck {
	return &IntegrityCheck{snap: snap, atlas: atlas, now: now, fix: fix}
}

func (c *IntegrityCheck) Name() string {
	return "Travel Data"
}

func (c *IntegrityCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	result.Items = append(result.Items, c.formatItems()...)
	result.Items = append(result.Items, c.duplicateCountryItems()...)
	result.Items = append(result.Items, c.unknownCountryItems()...)
	result.Items = append(result.Items, c.duplicateCityItems()...)
	result.Items = append(result.Items, c.wishlistItems()...)
	result.Items = append(result.Items, c.visitDateItems()...)

	if c.fix == nil || CountFixable([]Result{result}) == 0 {
		return result
	}

	if err := c.fix(ctx, Repair(c.snap, c.atlas)); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "autofix",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	for i, item := range result.Items {
		if item.Fixable && item.Status != StatusPass {
			result.Items[i].Status = StatusPass
			result.Items[i].Detail = "fixed: " + item.Detail
		}
	}
	return result
}

func (c *IntegrityCheck) formatItems() []CheckItem {
	if c.snap.Format == travel.FormatLegacy {
		return []CheckItem{{
			Label:   "storage format",
			Status:  StatusWarn,
			Detail:  "visited countries use the legacy name-only format",
			Fixable: true,
		}}
	}
	return []CheckItem{{Label: "storage format", Status: StatusPass, Detail: string(travel.FormatStructured)}}
}

func (c *IntegrityCheck) duplicateCountryItems() []CheckItem {
	var items []CheckItem
	seen := make(map[string]string)
	for _, country := range c.snap.Visited {
		key := countryKey(c.atlas, country.Name)
		if first, ok := seen[key]; ok {
			items = append(items, CheckItem{
				Label:   country.Name,
				Status:  StatusFail,
				Detail:  fmt.Sprintf("duplicate of %q", first),
				Fixable: true,
			})
			continue
		}
		seen[key] = country.Name
	}
	return passIfEmpty(items, "unique countries")
}

func (c *IntegrityCheck) unknownCountryItems() []CheckItem {
	var items []CheckItem
	for _, country := range c.snap.Visited {
		if !c.atlas.IsValidCountry(country.Name) {
			items = append(items, CheckItem{
				Label:  country.Name,
				Status: StatusWarn,
				Detail: "not in the country reference table",
			})
		}
	}
	return passIfEmpty(items, "known countries")
}

func (c *IntegrityCheck) duplicateCityItems() []CheckItem {
	var items []CheckItem
	for _, country := range c.snap.Visited {
		seen := make(map[string]bool)
		for _, city := range country.Cities {
			key := strings.ToLower(city.Name)
			if seen[key] {
				items = append(items, CheckItem{
					Label:   country.Name + " / " + city.Name,
					Status:  StatusFail,
					Detail:  "city listed more than once",
					Fixable: true,
				})
			}
			seen[key] = true
		}
	}
	return passIfEmpty(items, "unique cities")
}

func (c *IntegrityCheck) wishlistItems() []CheckItem {
	var items []CheckItem
	visited := travel.NewState(c.snap.Visited, nil)
	seen := make(map[string]bool)
	for _, wish := range c.snap.Wishlist {
		key := countryKey(c.atlas, wish)
		_, isVisited := visited.FindVisited(c.atlas, wish)
		switch {
		case seen[key]:
			items = append(items, CheckItem{
				Label:   wish,
				Status:  StatusFail,
				Detail:  "wishlisted more than once",
				Fixable: true,
			})
		case isVisited:
			items = append(items, CheckItem{
				Label:   wish,
				Status:  StatusFail,
				Detail:  "both visited and wishlisted",
				Fixable: true,
			})
		}
		seen[key] = true
	}
	return passIfEmpty(items, "wishlist")
}

func (c *IntegrityCheck) visitDateItems() []CheckItem {
	var items []CheckItem
	today := c.now.Format(time.DateOnly)
	for _, country := range c.snap.Visited {
		for _, city := range country.Cities {
			label := country.Name + " / " + city.Name
			if _, err := travel.ParseVisitDate(city.VisitDate); err != nil {
				items = append(items, CheckItem{
					Label:  label,
					Status: StatusWarn,
					Detail: fmt.Sprintf("visit date %q is not YYYY-MM-DD", city.VisitDate),
				})
				continue
			}
			if city.VisitDate > today {
				items = append(items, CheckItem{
					Label:  label,
					Status: StatusWarn,
					Detail: fmt.Sprintf("visit date %s is in the future", city.VisitDate),
				})
			}
		}
	}
	return passIfEmpty(items, "visit dates")
}

func passIfEmpty(items []CheckItem, label string) []CheckItem {
	if len(items) > 0 {
		return items
	}
	return []CheckItem{{Label: label, Status: StatusPass}}
}

// countryKey folds aliases and case so two spellings of a country compare equal.
func countryKey(atlas travel.Atlas, name string) string {
	return strings.ToLower(travel.CanonicalName(atlas, name))
}

// Repair returns snap with duplicates merged away and the wishlist made
// disjoint from the visited list. Aliases count as the same country. Cities of
// a duplicate country are merged into the first occurrence. Unknown names and
// odd dates are kept.
func Repair(snap Snapshot, atlas travel.Atlas) Snapshot {
	out := Snapshot{Format: travel.FormatStructured}

	index := make(map[string]int)
	for _, country := range snap.Visited {
		key := countryKey(atlas, country.Name)
		i, ok := index[key]
		if !ok {
			i = len(out.Visited)
			index[key] = i
			out.Visited = append(out.Visited, travel.VisitedCountry{Name: country.Name, Cities: []travel.City{}})
		}
		for _, city := range country.Cities {
			if !out.Visited[i].HasCity(city.Name) {
				out.Visited[i].Cities = append(out.Visited[i].Cities, city)
			}
		}
	}
	if out.Visited == nil {
		out.Visited = []travel.VisitedCountry{}
	}

	out.Wishlist = []string{}
	seen := make(map[string]bool)
	for _, wish := range snap.Wishlist {
		key := countryKey(atlas, wish)
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, visited := index[key]; visited {
			continue
		}
		out.Wishlist = append(out.Wishlist, wish)
	}

	return out
}
