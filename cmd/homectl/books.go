package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/homemanager/homemanager/internal/analytics"
	"github.com/homemanager/homemanager/internal/app"
	"github.com/homemanager/homemanager/internal/model"
	"github.com/homemanager/homemanager/internal/services"
)

func newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Manage the reading list",
	}

	var (
		author string
		pages  int
		isbn   string
	)
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				req := services.CreateBookRequest{
					Title:      args[0],
					Author:     author,
					TotalPages: pages,
				}
				if isbn != "" {
					req.ISBN = &isbn
				}
				rec, err := a.Books.Create(req)
				if err != nil {
					return err
				}
				fmt.Printf("created %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&author, "author", "a", "", "Author (required)")
	addCmd.Flags().IntVarP(&pages, "pages", "p", 0, "Total page count")
	addCmd.Flags().StringVar(&isbn, "isbn", "", "ISBN")
	_ = addCmd.MarkFlagRequired("author")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "progress <id> <page>",
		Short: "Move the bookmark; reaching the last page completes the book",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid page %q", args[1])
			}
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Books.UpdateProgress(args[0], page)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d/%d %s\n", rec.Title, rec.CurrentPage, rec.TotalPages, rec.Status)
				return nil
			})
		},
	})

	var status string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List books, currently-reading first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				books := analytics.FilterBooks(a.Books.All(), "", model.BookStatus(status))
				for _, b := range analytics.SortBooks(books) {
					fmt.Printf("%-10s %3d/%3d  %s by %s  (%s)\n",
						b.Status, b.CurrentPage, b.TotalPages, b.Title, b.Author, b.ID)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVarP(&status, "status", "s", "", "to-read|reading|completed|abandoned")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				return a.Books.Delete(args[0])
			})
		},
	})

	return cmd
}
