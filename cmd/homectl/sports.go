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

func newActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log workouts",
	}

	var (
		typ      string
		duration int
		distance float64
		calories int
		date     string
	)
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Log a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				when := time.Now().UTC()
				if date != "" {
					d, err := time.Parse("2006-01-02", date)
					if err != nil {
						return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
					}
					when = d
				}
				req := services.CreateActivityRequest{
					Type:     model.ActivityType(typ),
					Name:     args[0],
					Duration: duration,
					Date:     when,
				}
				if distance > 0 {
					req.Distance = &distance
				}
				if calories > 0 {
					req.Calories = &calories
				}
				rec, err := a.Sports.CreateActivity(req)
				if err != nil {
					return err
				}
				fmt.Printf("logged %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&typ, "type", "t", "other", "running|cycling|swimming|gym|yoga|hiking|other")
	addCmd.Flags().IntVarP(&duration, "minutes", "m", 0, "Duration in minutes")
	addCmd.Flags().Float64VarP(&distance, "km", "k", 0, "Distance in km")
	addCmd.Flags().IntVarP(&calories, "calories", "c", 0, "Calories burned")
	addCmd.Flags().StringVar(&date, "date", "", "Activity date, YYYY-MM-DD (default today)")
	cmd.AddCommand(addCmd)

	var filterType string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				acts := analytics.FilterActivities(a.Sports.Activities(), model.ActivityType(filterType))
				for _, act := range analytics.SortActivities(acts) {
					fmt.Printf("%s %-9s %4dmin  %s  (%s)\n",
						act.Date.Format("2006-01-02"), act.Type, act.Duration, act.Name, act.ID)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVarP(&filterType, "type", "t", "", "Filter by activity type")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "week",
		Short: "Show the trailing week's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				s := analytics.SummarizeWeekActivities(a.Sports.Activities(), time.Now().UTC())
				fmt.Printf("%d activities, %d min, %.1f km, %d kcal\n",
					s.Count, s.Duration, s.Distance, s.Calories)
				return nil
			})
		},
	})

	return cmd
}

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track training goals",
	}

	var (
		period string
		metric string
		target float64
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				now := time.Now().UTC()
				end := now.AddDate(0, 0, 7)
				if model.GoalPeriod(period) == model.GoalMonthly {
					end = now.AddDate(0, 1, 0)
				}
				rec, err := a.Sports.CreateGoal(services.CreateGoalRequest{
					Period:    model.GoalPeriod(period),
					Target:    target,
					Metric:    model.GoalMetric(metric),
					StartDate: now,
					EndDate:   end,
				})
				if err != nil {
					return err
				}
				fmt.Printf("created %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&period, "period", "p", "weekly", "weekly|monthly")
	addCmd.Flags().StringVarP(&metric, "metric", "m", "activities", "activities|duration|distance|calories")
	addCmd.Flags().Float64VarP(&target, "target", "t", 0, "Target value (required)")
	_ = addCmd.MarkFlagRequired("target")
	cmd.AddCommand(addCmd)

	var progress float64
	setCmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Record goal progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Sports.UpdateGoal(args[0], services.UpdateGoalRequest{Current: &progress})
				if err != nil {
					return err
				}
				fmt.Printf("%.0f%% of %s %s\n", analytics.GoalProgress(rec), rec.Period, rec.Metric)
				return nil
			})
		},
	}
	setCmd.Flags().Float64VarP(&progress, "current", "c", 0, "Current progress value")
	cmd.AddCommand(setCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				for _, g := range a.Sports.Goals() {
					fmt.Printf("%-8s %-10s %.1f/%.1f (%.0f%%)  (%s)\n",
						g.Period, g.Metric, g.Current, g.Target, analytics.GoalProgress(g), g.ID)
				}
				return nil
			})
		},
	})

	return cmd
}
