package travel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when the add-country form is submitted blank.
	ErrEmptyName = errors.New("empty name")
	// ErrUnknownCountry is returned when a name is not in the reference table.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrDuplicateCountry is returned when a country is already on the visited list.
	ErrDuplicateCountry = errors.New("duplicate")
)

// ValidationError is a user-facing rejection of add-country input.
type ValidationError struct {
	Reason error  // one of ErrEmptyName, ErrUnknownCountry, ErrDuplicateCountry
	Name   string // formatted name, empty for ErrEmptyName
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ErrEmptyName:
		return "Please enter a country name!"
	case ErrUnknownCountry:
		return fmt.Sprintf("%q is not a valid country name!", e.Name)
	case ErrDuplicateCountry:
		return "This country is already on your list!"
	default:
		return fmt.Sprintf("invalid country %q: %v", e.Name, e.Reason)
	}
}

func (e *ValidationError) Unwrap() error { return e.Reason }

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
