package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/analytics"
	"github.com/homemanager/homemanager/internal/app"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the dashboard summary across every module",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				d := analytics.BuildDashboard(
					a.Todos.All(),
					a.Sports.Activities(),
					a.Books.All(),
					a.Expenses.Expenses(),
					a.Expenses.Budgets(),
					a.Ideas.All(),
					time.Now().UTC(),
				)
				fmt.Printf("tasks:      %d pending, %d done (%.0f%%)\n",
					d.Todos.Pending, d.Todos.Completed, d.Todos.CompletionRate)
				fmt.Printf("sports:     %d activities this week, %d min\n",
					d.WeekActivities.Count, d.WeekActivities.Duration)
				fmt.Printf("books:      %d in progress\n", d.Reading)
				fmt.Printf("expenses:   %s this month (%.0f%% of budget)\n",
					d.MonthExpenses, d.BudgetUsagePct)
				fmt.Printf("ideas:      %d active\n", d.ActiveIdeas)
				return nil
			})
		},
	}
}
