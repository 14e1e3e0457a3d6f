// Package validate provides shared input validation for the CLI and TUI forms.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"
)

// Required validates a value is non-empty after trimming whitespace.
func Required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// CityName validates a city name is non-empty after trimming whitespace.
func CityName(name string) error {
	return Required("city name")(name)
}

// VisitDate validates a YYYY-MM-DD date that is not after today. Today is
// taken from now's calendar date.
func VisitDate(now time.Time) func(string) error {
	return func(date string) error {
		date = strings.TrimSpace(date)
		if date == "" {
			return fmt.Errorf("visit date is required")
		}
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return fmt.Errorf("visit date must look like 2024-05-31")
		}
		if date > now.Format(time.DateOnly) {
			return fmt.Errorf("visit date cannot be in the future")
		}
		return nil
	}
}

// CityFields validates the city form as criterio field errors.
func CityFields(city, date string, now time.Time) error {
	return criterio.ValidateStruct(
		criterio.Run("city", city, CityName),
		criterio.Run("date", date, VisitDate(now)),
	)
}
