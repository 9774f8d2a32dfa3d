// Package ident supplies record identifiers and timestamps for the stores.
package ident

import (
	"time"

	"github.com/google/uuid"
)

// Generator hands out unique record ids and the current time. Stores take it
// as a dependency so tests can substitute deterministic implementations.
type Generator interface {
	NewID() string
	Now() time.Time
}

// System is the production generator: random UUIDs and UTC wall-clock time.
type System struct{}

func (System) NewID() string  { return uuid.NewString() }
func (System) Now() time.Time { return time.Now().UTC() }
