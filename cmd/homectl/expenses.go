package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/analytics"
	"github.com/homemanager/homemanager/internal/app"
	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/services"
)

func newExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Track spending",
	}

	var (
		amount    string
		category  string
		date      string
		method    string
		recurring bool
		tags      []string
	)
	addCmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Record an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := model.ParseCents(amount)
			if err != nil {
				return err
			}
			return withApp(true, func(ctx context.Context, a *app.App) error {
				when := time.Now().UTC()
				if date != "" {
					d, err := time.Parse("2006-01-02", date)
					if err != nil {
						return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
					}
					when = d
				}
				req := services.CreateExpenseRequest{
					Amount:      cents,
					Category:    category,
					Description: args[0],
					Date:        when,
					Recurring:   recurring,
					Tags:        tags,
				}
				if method != "" {
					req.PaymentMethod = &method
				}
				rec, err := a.Expenses.CreateExpense(req)
				if err != nil {
					return err
				}
				fmt.Printf("recorded %s (%s)\n", rec.Amount, rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount, e.g. 45.50 (required)")
	addCmd.Flags().StringVarP(&category, "category", "c", "Other", "Category")
	addCmd.Flags().StringVar(&date, "date", "", "Expense date, YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&method, "method", "", "Payment method")
	addCmd.Flags().BoolVar(&recurring, "recurring", false, "Mark as recurring")
	addCmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags, repeatable")
	_ = addCmd.MarkFlagRequired("amount")
	cmd.AddCommand(addCmd)

	var (
		query          string
		filterCategory string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				exps := analytics.FilterExpenses(a.Expenses.Expenses(), query, filterCategory)
				for _, e := range analytics.SortExpenses(exps) {
					fmt.Printf("%s %10s  %-13s %s  (%s)\n",
						e.Date.Format("2006-01-02"), e.Amount, e.Category, e.Description, e.ID)
				}
				fmt.Printf("total: %s\n", analytics.SumExpenses(exps))
				return nil
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Substring match on description")
	listCmd.Flags().StringVarP(&filterCategory, "category", "c", "", "Filter by category")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				return a.Expenses.DeleteExpense(args[0])
			})
		},
	})

	return cmd
}

func newBudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}

	var (
		limit  string
		period string
	)
	addCmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Add a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := model.ParseCents(limit)
			if err != nil {
				return err
			}
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Expenses.CreateBudget(services.CreateBudgetRequest{
					Category: args[0],
					Limit:    cents,
					Period:   model.BudgetPeriod(period),
				})
				if err != nil {
					return err
				}
				fmt.Printf("created %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&limit, "limit", "l", "", "Limit, e.g. 500 (required)")
	addCmd.Flags().StringVarP(&period, "period", "p", "monthly", "weekly|monthly|yearly")
	_ = addCmd.MarkFlagRequired("limit")
	cmd.AddCommand(addCmd)

	var spent string
	spendCmd := &cobra.Command{
		Use:   "spent <id>",
		Short: "Record how much of the budget is used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := model.ParseCents(spent)
			if err != nil {
				return err
			}
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Expenses.UpdateBudget(args[0], services.UpdateBudgetRequest{Spent: &cents})
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s of %s\n", rec.Category, rec.Spent, rec.Limit)
				return nil
			})
		},
	}
	spendCmd.Flags().StringVarP(&spent, "amount", "a", "", "Spent amount (required)")
	_ = spendCmd.MarkFlagRequired("amount")
	cmd.AddCommand(spendCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				for _, b := range a.Expenses.Budgets() {
					pct := analytics.Percent(b.Spent.Float64(), b.Limit.Float64())
					fmt.Printf("%-13s %-8s %s/%s (%.0f%%)  (%s)\n",
						b.Category, b.Period, b.Spent, b.Limit, pct, b.ID)
				}
				return nil
			})
		},
	})

	return cmd
}
