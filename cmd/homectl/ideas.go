package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/analytics"
	"github.com/homemanager/homemanager/internal/app"
	"github.com/homemanager/homemanager/internal/services"
)

func newIdeaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Capture notes and ideas",
	}

	var (
		content string
		tags    []string
		pinned  bool
	)
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Capture an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Ideas.Create(services.CreateIdeaRequest{
					Title:   args[0],
					Content: content,
					Tags:    tags,
					Pinned:  pinned,
				})
				if err != nil {
					return err
				}
				fmt.Printf("created %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&content, "content", "c", "", "Body text, markdown welcome")
	addCmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags, repeatable")
	addCmd.Flags().BoolVar(&pinned, "pin", false, "Pin to the top")
	cmd.AddCommand(addCmd)

	var (
		query    string
		tag      string
		archived bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List ideas, pinned first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				ideas := analytics.FilterIdeas(a.Ideas.All(), analytics.IdeaFilter{
					Query:    query,
					Tag:      tag,
					Archived: archived,
				})
				for _, i := range analytics.SortIdeas(ideas) {
					pin := " "
					if i.Pinned {
						pin = "*"
					}
					fmt.Printf("%s %s  (%s)\n", pin, i.Title, i.ID)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Substring match on title/content")
	listCmd.Flags().StringVarP(&tag, "tag", "t", "", "Filter by tag")
	listCmd.Flags().BoolVar(&archived, "archived", false, "Show the archive instead")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "pin <id>",
		Short: "Toggle pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Ideas.TogglePin(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s pinned=%v\n", rec.ID, rec.Pinned)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "archive <id>",
		Short: "Toggle archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Ideas.ToggleArchive(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s archived=%v\n", rec.ID, rec.Archived)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an idea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				return a.Ideas.Delete(args[0])
			})
		},
	})

	return cmd
}
