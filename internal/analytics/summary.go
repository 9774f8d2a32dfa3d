package analytics

import (
	"time"

	"github.com/homemanager/homemanager/internal/model"
)

// Percent returns part/total as a percentage, and 0 when total is 0.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// WithinPastWeek reports whether t falls in the trailing seven days ending at
// now. Future dates are excluded.
func WithinPastWeek(t, now time.Time) bool {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	return !t.Before(weekAgo) && !t.After(now)
}

// SameMonth reports whether t shares calendar month and year with now.
func SameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// TodoSummary is the dashboard's task widget.
type TodoSummary struct {
	Pending        int
	Completed      int
	CompletionRate float64 // percent
}

func SummarizeTodos(todos []model.Todo) TodoSummary {
	var s TodoSummary
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	s.CompletionRate = Percent(float64(s.Completed), float64(len(todos)))
	return s
}

// WeekActivitySummary aggregates the trailing week of workouts.
type WeekActivitySummary struct {
	Count    int
	Duration int // minutes
	Distance float64
	Calories int
}

func SummarizeWeekActivities(activities []model.Activity, now time.Time) WeekActivitySummary {
	var s WeekActivitySummary
	for _, a := range activities {
		if !WithinPastWeek(a.Date, now) {
			continue
		}
		s.Count++
		s.Duration += a.Duration
		if a.Distance != nil {
			s.Distance += *a.Distance
		}
		if a.Calories != nil {
			s.Calories += *a.Calories
		}
	}
	return s
}

// DayTotal is one bucket of the seven-day activity chart.
type DayTotal struct {
	Day      time.Time // midnight, local to the supplied now
	Duration int
	Calories int
}

// DailyTotals buckets activities per calendar day for the `days` days ending
// at now, oldest first.
func DailyTotals(activities []model.Activity, now time.Time, days int) []DayTotal {
	out := make([]DayTotal, days)
	for i := range out {
		d := now.AddDate(0, 0, -(days - 1 - i))
		out[i].Day = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}
	for _, a := range activities {
		day := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, now.Location())
		for i := range out {
			if out[i].Day.Equal(day) {
				out[i].Duration += a.Duration
				if a.Calories != nil {
					out[i].Calories += *a.Calories
				}
				break
			}
		}
	}
	return out
}

// SumExpenses adds up amounts in exact cents.
func SumExpenses(expenses []model.Expense) model.Cents {
	var total model.Cents
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// MonthExpenseTotal sums the expenses of the current calendar month.
func MonthExpenseTotal(expenses []model.Expense, now time.Time) model.Cents {
	var total model.Cents
	for _, e := range expenses {
		if SameMonth(e.Date, now) {
			total += e.Amount
		}
	}
	return total
}

// BudgetUsage returns the month-to-date spend as a percentage of the combined
// budget limits; 0 when no budgets exist.
func BudgetUsage(budgets []model.Budget, monthTotal model.Cents) float64 {
	var limits model.Cents
	for _, b := range budgets {
		limits += b.Limit
	}
	return Percent(monthTotal.Float64(), limits.Float64())
}

// BudgetRemaining returns the combined limits minus the month-to-date spend,
// floored at zero.
func BudgetRemaining(budgets []model.Budget, monthTotal model.Cents) model.Cents {
	var limits model.Cents
	for _, b := range budgets {
		limits += b.Limit
	}
	if monthTotal >= limits {
		return 0
	}
	return limits - monthTotal
}

// PagesRead counts pages across books: the full page count for completed
// books, the bookmark position otherwise.
func PagesRead(books []model.Book) int {
	total := 0
	for _, b := range books {
		if b.Status == model.BookCompleted {
			total += b.TotalPages
		} else {
			total += b.CurrentPage
		}
	}
	return total
}

// CountBooks returns how many books currently have the given status.
func CountBooks(books []model.Book, status model.BookStatus) int {
	n := 0
	for _, b := range books {
		if b.Status == status {
			n++
		}
	}
	return n
}

// ReadingProgress returns the bookmark position as a percentage of the page
// count; 0 for books with no pages.
func ReadingProgress(b model.Book) float64 {
	return Percent(float64(b.CurrentPage), float64(b.TotalPages))
}

// GoalProgress returns goal completion as a percentage of the target.
func GoalProgress(g model.Goal) float64 {
	return Percent(g.Current, g.Target)
}

// Dashboard is the one-stop summary combining every store at a single point
// in time.
type Dashboard struct {
	Todos          TodoSummary
	WeekActivities WeekActivitySummary
	Reading        int // books currently being read
	MonthExpenses  model.Cents
	BudgetUsagePct float64
	ActiveIdeas    int
}

func BuildDashboard(
	todos []model.Todo,
	activities []model.Activity,
	books []model.Book,
	expenses []model.Expense,
	budgets []model.Budget,
	ideas []model.Idea,
	now time.Time,
) Dashboard {
	month := MonthExpenseTotal(expenses, now)
	active := 0
	for _, i := range ideas {
		if !i.Archived {
			active++
		}
	}
	return Dashboard{
		Todos:          SummarizeTodos(todos),
		WeekActivities: SummarizeWeekActivities(activities, now),
		Reading:        CountBooks(books, model.BookReading),
		MonthExpenses:  month,
		BudgetUsagePct: BudgetUsage(budgets, month),
		ActiveIdeas:    active,
	}
}
