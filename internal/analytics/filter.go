// Package analytics computes read-only views over store snapshots: filters,
// sort orders, time windows and summary numbers. Everything here is a pure
// function recomputed on each call; nothing is cached or written back.
package analytics

import (
	"strings"

	"github.com/homemanager/homemanager/internal/model"
)

// containsFold reports a case-insensitive substring match.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func derefOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TodoFilter selects todos. Zero values mean "no constraint" except
// IncludeCompleted, which must be set to see completed items.
type TodoFilter struct {
	Query            string
	Priority         model.Priority
	IncludeCompleted bool
	TopLevelOnly     bool
}

func FilterTodos(todos []model.Todo, f TodoFilter) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Query != "" && !containsFold(t.Title, f.Query) && !containsFold(derefOr(t.Description), f.Query) {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if !f.IncludeCompleted && t.Completed {
			continue
		}
		if f.TopLevelOnly && t.ParentID != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterBooks matches query against title and author, and status exactly
// when non-empty.
func FilterBooks(books []model.Book, query string, status model.BookStatus) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if query != "" && !containsFold(b.Title, query) && !containsFold(b.Author, query) {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

// IdeaFilter selects ideas. Archived toggles between the archive and the
// active set; Tag requires membership when non-empty.
type IdeaFilter struct {
	Query    string
	Tag      string
	Archived bool
}

func FilterIdeas(ideas []model.Idea, f IdeaFilter) []model.Idea {
	out := make([]model.Idea, 0, len(ideas))
	for _, i := range ideas {
		if f.Query != "" && !containsFold(i.Title, f.Query) && !containsFold(i.Content, f.Query) {
			continue
		}
		if i.Archived != f.Archived {
			continue
		}
		if f.Tag != "" && !contains(i.Tags, f.Tag) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

// FilterExpenses matches query against the description and category exactly
// when non-empty.
func FilterExpenses(expenses []model.Expense, query, category string) []model.Expense {
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if query != "" && !containsFold(e.Description, query) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterActivities keeps activities of the given type; empty means all.
func FilterActivities(activities []model.Activity, typ model.ActivityType) []model.Activity {
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if typ != "" && a.Type != typ {
			continue
		}
		out = append(out, a)
	}
	return out
}
