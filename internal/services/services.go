// Package services implements the domain operations over the store
// collections: boundary validation, the todo hierarchy, book progress
// transitions and the toggle operations. Services surface ErrNotFound for
// mutations against missing ids; the collections underneath stay silent.
package services

import (
	"errors"
	"fmt"

	"github.com/homemanager/homemanager/internal/model"
)

var (
	errNegativeAmount   = errors.New("amount must not be negative")
	errNonPositiveLimit = errors.New("limit must be positive")
)

// invalid wraps a validation failure in model.ErrValidation.
func invalid(err error) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, model.ErrNotFound)
}
