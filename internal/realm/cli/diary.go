package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/diary"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

var diaryDate string

var diaryCmd = &cobra.Command{
	Use:   "diary",
	Short: "Write and read chronicle entries",
}

var diaryAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a chronicle entry for today",
	Args:  cobra.MinimumNArgs(1),
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

		entry, err := diary.NewEntry(strings.Join(args, " "), time.Now())
		if err != nil {
			if errors.Is(err, common.ErrEmptyInput) {
				return fmt.Errorf("entry text cannot be empty")
			}
			return err
		}

		entries := store.New[models.DiaryEntry](backend, store.SlotDiary)
		if _, err := entries.Add(ctx, entry); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Chronicle entry recorded")
		return nil
	},
}

var diaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show chronicle entries for one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		view := diary.NewView(time.Now)
		if diaryDate != "" {
			if err := view.Select(diaryDate); err != nil {
				if errors.Is(err, common.ErrFutureDate) {
					notice := diary.NewNotice(time.Now)
					notice.Set("The chronicle cannot show days that have not yet dawned")
					if msg, ok := notice.Message(); ok {
						fmt.Fprintln(out, msg)
					}
				} else {
					return err
				}
			}
		}

		entries := store.New[models.DiaryEntry](backend, store.SlotDiary)
		all, err := entries.Load(ctx)
		if err != nil {
			return err
		}

		date := view.SelectedDate()
		selected := diary.EntriesForDate(all, date)
		if len(selected) == 0 {
			fmt.Fprintf(out, "No entries for %s\n", date)
			return nil
		}

		fmt.Fprintf(out, "Entries for %s:\n", date)
		for _, e := range selected {
			fmt.Fprintf(out, "  [%s] %s\n", e.Timestamp, e.Content)
		}
		return nil
	},
}

var diaryDatesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List days that have chronicle entries, newest first",
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

		entries := store.New[models.DiaryEntry](backend, store.SlotDiary)
		all, err := entries.Load(ctx)
		if err != nil {
			return err
		}

		for _, d := range diary.DistinctDates(all) {
			fmt.Fprintln(cmd.OutOrStdout(), d)
		}
		return nil
	},
}

func init() {
	diaryListCmd.Flags().StringVar(&diaryDate, "date", "", "day to show (yyyy-mm-dd, defaults to today)")

	diaryCmd.AddCommand(diaryAddCmd)
	diaryCmd.AddCommand(diaryListCmd)
	diaryCmd.AddCommand(diaryDatesCmd)
	rootCmd.AddCommand(diaryCmd)
}
