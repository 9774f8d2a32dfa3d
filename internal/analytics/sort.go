package analytics

import (
	"cmp"
	"slices"

	"github.com/homemanager/homemanager/internal/model"
)

// SortTodos orders a copy of todos for display: incomplete before complete,
// then priority (high first), then ascending due date. Undated items sort
// after dated ones; ties keep their input order (stable).
func SortTodos(todos []model.Todo) []model.Todo {
	out := slices.Clone(todos)
	slices.SortStableFunc(out, func(a, b model.Todo) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}
			return -1
		}
		if c := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); c != 0 {
			return c
		}
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			return a.DueDate.Compare(*b.DueDate)
		case a.DueDate != nil:
			return -1
		case b.DueDate != nil:
			return 1
		default:
			return 0
		}
	})
	return out
}

// SortBooks orders a copy of books: reading, to-read, completed, abandoned,
// then most recently updated first.
func SortBooks(books []model.Book) []model.Book {
	out := slices.Clone(books)
	slices.SortStableFunc(out, func(a, b model.Book) int {
		if c := cmp.Compare(a.Status.Rank(), b.Status.Rank()); c != 0 {
			return c
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// SortIdeas orders a copy of ideas: pinned first, then most recently updated.
func SortIdeas(ideas []model.Idea) []model.Idea {
	out := slices.Clone(ideas)
	slices.SortStableFunc(out, func(a, b model.Idea) int {
		if a.Pinned != b.Pinned {
			if a.Pinned {
				return -1
			}
			return 1
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// SortExpenses orders a copy of expenses by descending date.
func SortExpenses(expenses []model.Expense) []model.Expense {
	out := slices.Clone(expenses)
	slices.SortStableFunc(out, func(a, b model.Expense) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// SortActivities orders a copy of activities by descending date.
func SortActivities(activities []model.Activity) []model.Activity {
	out := slices.Clone(activities)
	slices.SortStableFunc(out, func(a, b model.Activity) int {
		return b.Date.Compare(a.Date)
	})
	return out
}
