package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karnadev/dragonsrealm/internal/common"
	"github.com/karnadev/dragonsrealm/internal/realm/diet"
	"github.com/karnadev/dragonsrealm/internal/realm/models"
	"github.com/karnadev/dragonsrealm/internal/realm/store"
)

var dietGrams float64

var dietCmd = &cobra.Command{
	Use:   "diet",
	Short: "Track meals and nutrition",
}

var dietAddCmd = &cobra.Command{
	Use:   "add <food>",
	Short: "Look up a food and log the consumed amount",
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

		client := newAPIClient(ctx, backend)
		record, err := client.Nutrition(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		entry, err := diet.NewEntry(*record, dietGrams, time.Now())
		if err != nil {
			if errors.Is(err, common.ErrInvalidQuantity) {
				// Matches the tracker's behavior: a bad amount is ignored,
				// nothing is stored and nothing is reported.
				return nil
			}
			return err
		}

		s := store.New[models.DietEntry](backend, store.SlotDiet)
		if _, err := s.Add(ctx, entry); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%.0f g, %s kcal)\n",
			entry.Name, entry.Quantity, diet.FormatAmount(&entry.Calories))
		return nil
	},
}

var dietListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show logged meals",
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

		s := store.New[models.DietEntry](backend, store.SlotDiet)
		all, err := s.Load(ctx)
		if err != nil {
			return err
		}

		for _, e := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d  %s  %.0f g  %s kcal  (%s)\n",
				e.ID, e.Name, e.Quantity, diet.FormatAmount(&e.Calories), e.Timestamp)
		}
		return nil
	},
}

var dietTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show aggregated nutrition totals",
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

		s := store.New[models.DietEntry](backend, store.SlotDiet)
		all, err := s.Load(ctx)
		if err != nil {
			return err
		}

		t := diet.AggregateTotals(all)
		fmt.Fprintf(out, "Calories:    %s kcal\n", diet.FormatAmount(&t.Calories))
		fmt.Fprintf(out, "Protein:     %s g\n", diet.FormatAmount(&t.Protein))
		fmt.Fprintf(out, "Carbs:       %s g\n", diet.FormatAmount(&t.Carbs))
		fmt.Fprintf(out, "Fat:         %s g\n", diet.FormatAmount(&t.Fat))
		fmt.Fprintf(out, "Fiber:       %s g\n", diet.FormatAmount(&t.Fiber))
		fmt.Fprintf(out, "Sugar:       %s g\n", diet.FormatAmount(&t.Sugar))
		fmt.Fprintf(out, "Sodium:      %s mg\n", diet.FormatAmount(&t.Sodium))
		fmt.Fprintf(out, "Potassium:   %s mg\n", diet.FormatAmount(&t.Potassium))
		fmt.Fprintf(out, "Cholesterol: %s mg\n", diet.FormatAmount(&t.Cholesterol))
		fmt.Fprintf(out, "Vitamin A:   %s\n", diet.FormatAmount(&t.Vitamins.A))
		fmt.Fprintf(out, "Vitamin C:   %s\n", diet.FormatAmount(&t.Vitamins.C))
		fmt.Fprintf(out, "Vitamin D:   %s\n", diet.FormatAmount(&t.Vitamins.D))
		fmt.Fprintf(out, "Vitamin E:   %s\n", diet.FormatAmount(&t.Vitamins.E))
		return nil
	},
}

func init() {
	dietAddCmd.Flags().Float64Var(&dietGrams, "grams", 100, "consumed amount in grams")

	dietCmd.AddCommand(dietAddCmd)
	dietCmd.AddCommand(dietListCmd)
	dietCmd.AddCommand(dietTotalsCmd)
	rootCmd.AddCommand(dietCmd)
}
