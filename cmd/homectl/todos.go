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

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage tasks",
	}

	var (
		description string
		priority    string
		due         string
		recur       string
		parent      string
		tags        []string
	)
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				req := services.CreateTodoRequest{
					Title:    args[0],
					Priority: model.Priority(priority),
					Tags:     tags,
				}
				if description != "" {
					req.Description = &description
				}
				if due != "" {
					d, err := time.Parse("2006-01-02", due)
					if err != nil {
						return fmt.Errorf("invalid --due (want YYYY-MM-DD): %w", err)
					}
					req.DueDate = &d
				}
				if recur != "" {
					req.Recurrence = model.Recurrence(recur)
				}
				if parent != "" {
					req.ParentID = &parent
				}
				rec, err := a.Todos.Create(req)
				if err != nil {
					return err
				}
				fmt.Printf("created %s\n", rec.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Longer description")
	addCmd.Flags().StringVarP(&priority, "priority", "p", "medium", "low|medium|high")
	addCmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD")
	addCmd.Flags().StringVar(&recur, "recur", "", "daily|weekly|monthly")
	addCmd.Flags().StringVar(&parent, "parent", "", "Parent todo id (subtask)")
	addCmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags, repeatable")
	cmd.AddCommand(addCmd)

	var (
		query         string
		filterPrio    string
		showCompleted bool
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, subtasks indented under their parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(false, func(ctx context.Context, a *app.App) error {
				tops := analytics.FilterTodos(a.Todos.All(), analytics.TodoFilter{
					Query:            query,
					Priority:         model.Priority(filterPrio),
					IncludeCompleted: showCompleted,
					TopLevelOnly:     true,
				})
				for _, t := range analytics.SortTodos(tops) {
					printTodo(t, "")
					for c := range a.Todos.ChildrenOf(t.ID) {
						printTodo(c, "  ")
					}
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Substring match on title/description")
	listCmd.Flags().StringVarP(&filterPrio, "priority", "p", "", "Filter by priority")
	listCmd.Flags().BoolVar(&showCompleted, "all", false, "Include completed tasks")
	cmd.AddCommand(listCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				rec, err := a.Todos.ToggleComplete(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%s completed=%v\n", rec.ID, rec.Completed)
				return nil
			})
		},
	})

	var subtree bool
	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its direct children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(true, func(ctx context.Context, a *app.App) error {
				var n int
				if subtree {
					n = a.Todos.DeleteSubtree(args[0])
				} else {
					n = a.Todos.DeleteWithChildren(args[0])
				}
				fmt.Printf("removed %d\n", n)
				return nil
			})
		},
	}
	rmCmd.Flags().BoolVar(&subtree, "subtree", false, "Also delete grandchildren and deeper")
	cmd.AddCommand(rmCmd)

	return cmd
}

func printTodo(t model.Todo, indent string) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	due := ""
	if t.DueDate != nil {
		due = " due " + t.DueDate.Format("2006-01-02")
	}
	fmt.Printf("%s[%s] %-8s %s%s  (%s)\n", indent, mark, t.Priority, t.Title, due, t.ID)
}
