package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "homectl",
	Short: "Personal dashboard: todos, workouts, books, ideas, expenses",
}

func main() {
	rootCmd.AddCommand(
		newTodoCmd(),
		newBookCmd(),
		newActivityCmd(),
		newGoalCmd(),
		newExpenseCmd(),
		newBudgetCmd(),
		newIdeaCmd(),
		newSummaryCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newAgentCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withApp assembles the application, runs fn and, when save is set, persists
// the record snapshot afterwards.
func withApp(save bool, fn func(ctx context.Context, a *app.App) error) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := fn(ctx, a); err != nil {
		return err
	}
	if save {
		return a.SaveSnapshot()
	}
	return nil
}
