// Package store owns the in-memory record collections for every domain.
// Each collection is an independent copy-on-write arena keyed by record id;
// cross-domain relationships exist only as id references resolved at read
// time.
package store

import (
	"time"

	"github.com/homemanager/homemanager/internal/ident"
	"github.com/homemanager/homemanager/internal/model"
)

// Store aggregates the domain collections. Construct one per process (or per
// test) and pass it to the services that need it.
type Store struct {
	todos      *Collection[model.Todo]
	activities *Collection[model.Activity]
	goals      *Collection[model.Goal]
	books      *Collection[model.Book]
	expenses   *Collection[model.Expense]
	budgets    *Collection[model.Budget]
	ideas      *Collection[model.Idea]
}

// New builds an empty store using gen for ids and timestamps.
func New(gen ident.Generator) *Store {
	return &Store{
		todos: NewCollection(gen, Meta[model.Todo]{
			ID: func(t model.Todo) string { return t.ID },
			Init: func(t model.Todo, id string, now time.Time) model.Todo {
				t.ID, t.CreatedAt, t.UpdatedAt = id, now, now
				return t
			},
			Touch: func(t model.Todo, now time.Time) model.Todo {
				t.UpdatedAt = now
				return t
			},
		}),
		activities: NewCollection(gen, Meta[model.Activity]{
			ID: func(a model.Activity) string { return a.ID },
			Init: func(a model.Activity, id string, now time.Time) model.Activity {
				a.ID, a.CreatedAt = id, now
				return a
			},
		}),
		goals: NewCollection(gen, Meta[model.Goal]{
			ID: func(g model.Goal) string { return g.ID },
			Init: func(g model.Goal, id string, _ time.Time) model.Goal {
				g.ID = id
				return g
			},
		}),
		books: NewCollection(gen, Meta[model.Book]{
			ID: func(b model.Book) string { return b.ID },
			Init: func(b model.Book, id string, now time.Time) model.Book {
				b.ID, b.CreatedAt, b.UpdatedAt = id, now, now
				return b
			},
			Touch: func(b model.Book, now time.Time) model.Book {
				b.UpdatedAt = now
				return b
			},
		}),
		expenses: NewCollection(gen, Meta[model.Expense]{
			ID: func(e model.Expense) string { return e.ID },
			Init: func(e model.Expense, id string, now time.Time) model.Expense {
				e.ID, e.CreatedAt = id, now
				return e
			},
		}),
		budgets: NewCollection(gen, Meta[model.Budget]{
			ID: func(b model.Budget) string { return b.ID },
			Init: func(b model.Budget, id string, _ time.Time) model.Budget {
				b.ID = id
				return b
			},
		}),
		ideas: NewCollection(gen, Meta[model.Idea]{
			ID: func(i model.Idea) string { return i.ID },
			Init: func(i model.Idea, id string, now time.Time) model.Idea {
				i.ID, i.CreatedAt, i.UpdatedAt = id, now, now
				return i
			},
			Touch: func(i model.Idea, now time.Time) model.Idea {
				i.UpdatedAt = now
				return i
			},
		}),
	}
}

func (s *Store) Todos() *Collection[model.Todo]          { return s.todos }
func (s *Store) Activities() *Collection[model.Activity] { return s.activities }
func (s *Store) Goals() *Collection[model.Goal]          { return s.goals }
func (s *Store) Books() *Collection[model.Book]          { return s.books }
func (s *Store) Expenses() *Collection[model.Expense]    { return s.expenses }
func (s *Store) Budgets() *Collection[model.Budget]      { return s.budgets }
func (s *Store) Ideas() *Collection[model.Idea]          { return s.ideas }
