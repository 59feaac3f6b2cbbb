package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnadev/dragonsrealm/internal/realm/models"
	"github.com/karnadev/dragonsrealm/internal/realm/quests"
	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

var (
	questDifficulty string
	questCategory   string
	questFilter     string
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Manage the quest log",
}

var questAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Take on a new quest",
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

		q, err := quests.NewQuest(strings.Join(args, " "),
			models.Difficulty(questDifficulty), models.QuestCategory(questCategory), time.Now())
		if err != nil {
			return fmt.Errorf("quest text cannot be empty")
		}

		s := store.New[models.Quest](backend, store.SlotQuests)
		if _, err := s.Add(ctx, q); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Quest accepted (%s, %s)\n", q.Difficulty, q.Category)
		return nil
	},
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the quest log and completion rate",
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

		s := store.New[models.Quest](backend, store.SlotQuests)
		all, err := s.Load(ctx)
		if err != nil {
			return err
		}

		for _, q := range quests.Filter(all, quests.FilterMode(questFilter)) {
			mark := " "
			if q.Completed {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %d  %s (%s, %s)\n", mark, q.ID, q.Text, q.Difficulty, q.Category)
		}
		fmt.Fprintf(out, "Completion: %d%%\n", quests.CompletionRate(all))
		return nil
	},
}

var questDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a quest between done and not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quest id %q", args[0])
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.Quest](backend, store.SlotQuests)
		all, err := s.Update(ctx, id, func(q *models.Quest) { quests.Toggle(q) })
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Completion: %d%%\n", quests.CompletionRate(all))
		return nil
	},
}

var questRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Strike a quest from the log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quest id %q", args[0])
		}

		backend, closeFn, err := openBackend(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireLogin(ctx, backend); err != nil {
			return err
		}

		s := store.New[models.Quest](backend, store.SlotQuests)
		if _, err := s.Remove(ctx, id); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Quest removed")
		return nil
	},
}

func init() {
	questAddCmd.Flags().StringVar(&questDifficulty, "difficulty", "medium", "easy, medium or hard")
	questAddCmd.Flags().StringVar(&questCategory, "category", "combat", "combat, exploration or wisdom")
	questListCmd.Flags().StringVar(&questFilter, "filter", "all", "all, active or completed")

	questCmd.AddCommand(questAddCmd)
	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questDoneCmd)
	questCmd.AddCommand(questRmCmd)
	rootCmd.AddCommand(questCmd)
}
