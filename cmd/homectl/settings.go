package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/app"
	"github.com/homemanager/homemanager/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				s := a.Settings.Current()
				fmt.Printf("landing module:  %s\n", s.DefaultLandingModule)
				fmt.Printf("timezone:        %s\n", s.Timezone)
				fmt.Printf("currency:        %s\n", s.Currency)
				fmt.Printf("date format:     %s\n", s.DateFormat)
				fmt.Printf("week starts:     %s\n", s.WeekStartDay)
				fmt.Printf("reminders:       %v at %s (quiet %s-%s)\n",
					s.GlobalRemindersEnabled, s.DefaultReminderTime, s.QuietHoursStart, s.QuietHoursEnd)
				if s.LastExportDate != nil {
					fmt.Printf("last export:     %s\n", s.LastExportDate.Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	})

	var (
		currency   string
		timezone   string
		dateFormat string
		weekStart  string
		landing    string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences; unset flags are left unchanged",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				req := settings.UpdateRequest{}
				if cmd.Flags().Changed("currency") {
					req.Currency = &currency
				}
				if cmd.Flags().Changed("timezone") {
					req.Timezone = &timezone
				}
				if cmd.Flags().Changed("date-format") {
					req.DateFormat = &dateFormat
				}
				if cmd.Flags().Changed("week-start") {
					req.WeekStartDay = &weekStart
				}
				if cmd.Flags().Changed("landing") {
					req.DefaultLandingModule = &landing
				}
				a.Settings.Update(ctx, req)
				return nil
			})
		},
	}
	setCmd.Flags().StringVar(&currency, "currency", "", "Display currency, e.g. USD")
	setCmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name")
	setCmd.Flags().StringVar(&dateFormat, "date-format", "", "MM/DD/YYYY | DD/MM/YYYY | YYYY-MM-DD")
	setCmd.Flags().StringVar(&weekStart, "week-start", "", "sunday|monday")
	setCmd.Flags().StringVar(&landing, "landing", "", "Default landing module")
	cmd.AddCommand(setCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				a.Settings.Reset(ctx)
				return nil
			})
		},
	})

	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export every record to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				return a.ExportTo(ctx, args[0])
			})
		},
	}
}

func newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent",
		Short: "Run the background agent that rolls recurring tasks forward",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				return a.RunAgent(ctx)
			})
		},
	}
}
