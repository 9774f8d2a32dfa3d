package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homemanager/homemanager/internal/model"
)

func TestFilterTodosQueryMatchesTitleAndDescription(t *testing.T) {
	desc := "call the plumber"
	todos := []model.Todo{
		{Title: "Fix SINK"},
		{Title: "Groceries", Description: &desc},
		{Title: "Unrelated"},
	}
	got := FilterTodos(todos, TodoFilter{Query: "sink"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Fix SINK", got[0].Title)

	got = FilterTodos(todos, TodoFilter{Query: "plumber"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Title)
}

func TestFilterTodosHidesCompletedByDefault(t *testing.T) {
	todos := []model.Todo{
		{Title: "open"},
		{Title: "closed", Completed: true},
	}
	assert.Len(t, FilterTodos(todos, TodoFilter{}), 1)
	assert.Len(t, FilterTodos(todos, TodoFilter{IncludeCompleted: true}), 2)
}

func TestFilterTodosTopLevelOnly(t *testing.T) {
	parent := "p1"
	todos := []model.Todo{
		{Title: "root"},
		{Title: "child", ParentID: &parent},
	}
	got := FilterTodos(todos, TodoFilter{TopLevelOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "root", got[0].Title)
}

func TestFilterTodosByPriority(t *testing.T) {
	todos := []model.Todo{
		{Title: "urgent", Priority: model.PriorityHigh},
		{Title: "later", Priority: model.PriorityLow},
	}
	got := FilterTodos(todos, TodoFilter{Priority: model.PriorityHigh})
	assert.Len(t, got, 1)
	assert.Equal(t, "urgent", got[0].Title)
}

func TestFilterBooks(t *testing.T) {
	books := []model.Book{
		{Title: "The Go Programming Language", Author: "Donovan", Status: model.BookReading},
		{Title: "Dune", Author: "Herbert", Status: model.BookCompleted},
	}
	assert.Len(t, FilterBooks(books, "donovan", ""), 1)
	assert.Len(t, FilterBooks(books, "", model.BookCompleted), 1)
	assert.Len(t, FilterBooks(books, "dune", model.BookReading), 0)
	assert.Len(t, FilterBooks(books, "", ""), 2)
}

func TestFilterIdeasArchiveToggleAndTag(t *testing.T) {
	ideas := []model.Idea{
		{Title: "live", Tags: []string{"go", "cli"}},
		{Title: "shelved", Archived: true, Tags: []string{"go"}},
	}
	active := FilterIdeas(ideas, IdeaFilter{})
	assert.Len(t, active, 1)
	assert.Equal(t, "live", active[0].Title)

	archived := FilterIdeas(ideas, IdeaFilter{Archived: true})
	assert.Len(t, archived, 1)
	assert.Equal(t, "shelved", archived[0].Title)

	assert.Len(t, FilterIdeas(ideas, IdeaFilter{Tag: "cli"}), 1)
	assert.Len(t, FilterIdeas(ideas, IdeaFilter{Tag: "rust"}), 0)
}

func TestFilterExpensesByCategory(t *testing.T) {
	exps := []model.Expense{
		{Description: "groceries", Category: "Food"},
		{Description: "bus pass", Category: "Transport"},
	}
	assert.Len(t, FilterExpenses(exps, "", "Food"), 1)
	assert.Len(t, FilterExpenses(exps, "bus", ""), 1)
	assert.Len(t, FilterExpenses(exps, "bus", "Food"), 0)
}

func TestFilterActivitiesByType(t *testing.T) {
	acts := []model.Activity{
		{Name: "run", Type: model.ActivityRunning},
		{Name: "lift", Type: model.ActivityGym},
	}
	assert.Len(t, FilterActivities(acts, model.ActivityRunning), 1)
	assert.Len(t, FilterActivities(acts, ""), 2)
}
