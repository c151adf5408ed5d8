package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/spf13/cobra"
)

func newReviewCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "review <deck-id> <card-id> <again|good|easy>",
		Short: "Review a card and credit XP and the streak",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := domain.ParseRating(args[2])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[2])
			}
			return withStore(cmd, opts, func(ctx context.Context, app *application) error {
				result, err := app.reviews.Review(ctx, args[0], args[1], rating)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "next review %s (interval %dd, ease %.2f) +%d xp, level %d, streak %d\n",
					result.Card.NextReview.Format("2006-01-02"), result.Card.Interval, result.Card.EaseFactor,
					result.XPAwarded, result.Level, result.Streak)
				return nil
			})
		},
	}
}

func newXPCmd(opts *globalOptions) *cobra.Command {
	xpCmd := &cobra.Command{Use: "xp", Short: "Experience points"}

	xpCmd.AddCommand(&cobra.Command{
		Use:   "add <amount>",
		Short: "Award experience points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			return withStore(cmd, opts, func(_ context.Context, app *application) error {
				if err := app.store.Dispatch(state.NewAction(state.ActionAddXP, amount)); err != nil {
					return err
				}
				g := app.store.State().Gamification
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "level %d, %d/%d xp\n", g.Level, g.XP, state.XPForLevel(g.Level))
				return nil
			})
		},
	})
	return xpCmd
}

func newStreakCmd(opts *globalOptions) *cobra.Command {
	streakCmd := &cobra.Command{Use: "streak", Short: "Study streak"}

	streakCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Apply the daily streak rule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, opts, func(_ context.Context, app *application) error {
				if err := app.store.Dispatch(state.NewAction(state.ActionCheckStreak, nil)); err != nil {
					return err
				}
				g := app.store.State().Gamification
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "streak %d (last studied %s)\n", g.Streak, valueOr(g.LastStudiedDate, "never"))
				return nil
			})
		},
	})
	return streakCmd
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
