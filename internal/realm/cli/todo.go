package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnadev/dragonsrealm/internal/realm/models"
	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the plain checklist",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a checklist item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("item text cannot be empty")
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.TodoItem](backend, store.SlotTodos)
		item := models.TodoItem{ID: models.NewID(time.Now()), Text: text}
		if _, err := s.Add(ctx, item); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Added")
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.TodoItem](backend, store.SlotTodos)
		all, err := s.Load(ctx)
		if err != nil {
			return err
		}

		for _, item := range all {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %d  %s\n", mark, item.ID, item.Text)
		}
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a checklist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.TodoItem](backend, store.SlotTodos)
		if _, err := s.Update(ctx, id, func(item *models.TodoItem) {
			item.Completed = !item.Completed
		}); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Toggled")
		return nil
	},
}

var todoRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a checklist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.TodoItem](backend, store.SlotTodos)
		if _, err := s.Remove(ctx, id); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Removed")
		return nil
	},
}

func init() {
	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoRmCmd)
	rootCmd.AddCommand(todoCmd)
}
