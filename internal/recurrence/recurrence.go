// Package recurrence turns the recurrence flag on todos into new occurrences:
// when a recurring todo has been completed and its due date has passed, a
// fresh copy is spawned with the due date advanced to the next period.
package recurrence

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/store"
)

// Next returns the first occurrence strictly after `after`, stepping from
// `due` by the recurrence period. Calendar arithmetic, so monthly steps land
// on the same day-of-month where possible.
func Next(due time.Time, r model.Recurrence, after time.Time) time.Time {
	step := func(t time.Time) time.Time {
		switch r {
		case model.RecurrenceDaily:
			return t.AddDate(0, 0, 1)
		case model.RecurrenceWeekly:
			return t.AddDate(0, 0, 7)
		case model.RecurrenceMonthly:
			return t.AddDate(0, 1, 0)
		default:
			return t
		}
	}
	next := step(due)
	for !next.After(after) {
		next = step(next)
	}
	return next
}

// Service rolls recurring todos forward.
type Service struct {
	store *store.Store
	log   zerolog.Logger
}

func NewService(s *store.Store, log zerolog.Logger) *Service {
	return &Service{store: s, log: log}
}

// Roll spawns the next occurrence of every completed recurring todo whose due
// date has passed. The recurrence flag moves to the new occurrence so a todo
// spawns at most one successor. Returns how many occurrences were created.
func (s *Service) Roll(now time.Time) int {
	created := 0
	for _, t := range s.store.Todos().Snapshot() {
		if t.Recurrence == model.RecurrenceNone || !t.Completed || t.DueDate == nil {
			continue
		}
		if t.DueDate.After(now) {
			continue
		}
		due := Next(*t.DueDate, t.Recurrence, now)
		s.store.Todos().Create(model.Todo{
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			DueDate:     &due,
			Recurrence:  t.Recurrence,
			ParentID:    t.ParentID,
			Tags:        t.Tags,
		})
		s.store.Todos().Update(t.ID, func(old model.Todo) model.Todo {
			old.Recurrence = model.RecurrenceNone
			return old
		})
		created++
	}
	if created > 0 {
		s.log.Info().Int("created", created).Msg("recurring todos rolled forward")
	}
	return created
}
