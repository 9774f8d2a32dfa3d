// Package validate holds the boundary validation helpers used by the
// services. The store layer stays permissive; everything here runs before a
// mutation reaches a collection.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NonEmpty rejects empty or whitespace-only required text.
func NonEmpty(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonNegativeInt(field string, v int) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

func NonNegativeFloat(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

func PositiveFloat(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive", field)
	}
	return nil
}

// Rating checks an optional 1-5 star rating.
func Rating(v *int) error {
	if v == nil {
		return nil
	}
	if *v < 1 || *v > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	return nil
}

// Enum reports an error when valid is false, naming the offending field.
func Enum(field string, valid bool) error {
	if !valid {
		return fmt.Errorf("invalid %s", field)
	}
	return nil
}
