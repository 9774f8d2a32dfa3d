package store

import (
	"iter"
	"sync"
	"time"

	"github.com/homemanager/homemanager/internal/ident"
)

// Meta tells a Collection how to read and write a record's identity and
// timestamps, keeping the record types themselves plain structs.
type Meta[T any] struct {
	// ID reads the record id.
	ID func(T) string
	// Init assigns a fresh id and creation/update stamps on insert.
	Init func(rec T, id string, now time.Time) T
	// Touch refreshes the updated-at stamp on update. Nil for record types
	// that carry no updated-at field.
	Touch func(rec T, now time.Time) T
}

// Collection owns one domain's records in insertion order. Every mutation
// publishes a fresh slice and never modifies a published one, so any snapshot
// handed out earlier remains valid while mutations proceed.
type Collection[T any] struct {
	mu   sync.RWMutex
	gen  ident.Generator
	meta Meta[T]
	recs []T
}

// NewCollection builds an empty collection using gen for ids and timestamps.
func NewCollection[T any](gen ident.Generator, meta Meta[T]) *Collection[T] {
	return &Collection[T]{gen: gen, meta: meta}
}

// Create stamps rec with a fresh id and timestamps, appends it and returns
// the stored record.
func (c *Collection[T]) Create(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec = c.meta.Init(rec, c.gen.NewID(), c.gen.Now())
	next := make([]T, len(c.recs), len(c.recs)+1)
	copy(next, c.recs)
	c.recs = append(next, rec)
	return rec
}

// Update applies patch to the record with the given id, refreshes its
// updated-at stamp and returns the stored result. A missing id is a no-op
// and reports false; the collection is left untouched.
func (c *Collection[T]) Update(id string, patch func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.recs {
		if c.meta.ID(rec) != id {
			continue
		}
		out := patch(rec)
		if c.meta.Touch != nil {
			out = c.meta.Touch(out, c.gen.Now())
		}
		next := make([]T, len(c.recs))
		copy(next, c.recs)
		next[i] = out
		c.recs = next
		return out, true
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id. A missing id is a no-op.
func (c *Collection[T]) Delete(id string) bool {
	return c.DeleteWhere(func(rec T) bool { return c.meta.ID(rec) == id }) > 0
}

// DeleteWhere removes every record matching pred and returns how many were
// removed.
func (c *Collection[T]) DeleteWhere(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.recs))
	for _, rec := range c.recs {
		if !pred(rec) {
			next = append(next, rec)
		}
	}
	removed := len(c.recs) - len(next)
	if removed > 0 {
		c.recs = next
	}
	return removed
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	for rec := range c.Query(func(rec T) bool { return c.meta.ID(rec) == id }) {
		return rec, true
	}
	var zero T
	return zero, false
}

// Query returns a lazy, restartable iterator over the records matching pred,
// in insertion order, evaluated against the snapshot taken when Query was
// called.
func (c *Collection[T]) Query(pred func(T) bool) iter.Seq[T] {
	snap := c.Snapshot()
	return func(yield func(T) bool) {
		for _, rec := range snap {
			if pred(rec) && !yield(rec) {
				return
			}
		}
	}
}

// Snapshot returns the current record slice. Callers must not modify it.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recs
}

// Replace swaps in a whole new record slice, keeping the given order. Used
// when restoring persisted state.
func (c *Collection[T]) Replace(recs []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, len(recs))
	copy(next, recs)
	c.recs = next
}

// Len reports the current number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recs)
}
