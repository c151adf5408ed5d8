package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain/srs"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// generatedDeck is the shape of a generated flashcard set on disk.
type generatedDeck struct {
	Title  string `json:"title" yaml:"title"`
	Source string `json:"source" yaml:"source"`
	Cards  []struct {
		Front string `json:"front" yaml:"front"`
		Back  string `json:"back" yaml:"back"`
	} `json:"cards" yaml:"cards"`
}

// readGeneratedDeck decodes a JSON or YAML deck file, picked by extension.
func readGeneratedDeck(path string) (generatedDeck, error) {
	var deck generatedDeck

	data, err := os.ReadFile(path)
	if err != nil {
		return deck, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &deck)
	default:
		err = json.Unmarshal(data, &deck)
	}
	if err != nil {
		return deck, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(deck.Cards) == 0 {
		return deck, fmt.Errorf("%s: %w: no cards", path, domain.ErrEmptyContent)
	}
	return deck, nil
}

func newDeckCmd(opts *globalOptions) *cobra.Command {
	deckCmd := &cobra.Command{Use: "deck", Short: "Manage flashcard decks"}

	var title string
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a generated deck from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generated, err := readGeneratedDeck(args[0])
			if err != nil {
				return err
			}
			if title != "" {
				generated.Title = title
			}

			return withStore(cmd, opts, func(_ context.Context, app *application) error {
				pairs := make([][2]string, 0, len(generated.Cards))
				for _, c := range generated.Cards {
					pairs = append(pairs, [2]string{c.Front, c.Back})
				}
				deck, err := domain.NewFlashcardDeck(generated.Title, generated.Source, pairs, app.clock())
				if err != nil {
					return err
				}
				if err := app.store.Dispatch(state.NewAction(state.ActionAddFlashcardDeck, deck)); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s (%s) cards=%d\n", deck.Title, deck.ID, len(deck.Cards))
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&title, "title", "", "deck title (overrides the file)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List decks with their due counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, opts, func(_ context.Context, app *application) error {
				decks := app.store.State().StudyAids.Decks
				if len(decks) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no decks")
					return nil
				}
				now := app.clock()
				for _, d := range decks {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d cards\t%d due\n",
						d.ID, d.Title, len(d.Cards), len(srs.DueCards(d.Cards, now)))
				}
				return nil
			})
		},
	}

	due := &cobra.Command{
		Use:   "due <deck-id>",
		Short: "List the cards of a deck that are due now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, app *application) error {
				cards, err := app.reviews.DueCards(ctx, args[0])
				if err != nil {
					return err
				}
				if len(cards) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no cards due")
					return nil
				}
				for _, c := range cards {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tdue %s\n",
						c.ID, c.Front, c.NextReview.Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	}

	postpone := &cobra.Command{
		Use:   "postpone <deck-id> <card-id> <days>",
		Short: "Push a card's next review forward by whole days",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid days %q: %w", args[2], err)
			}
			return withStore(cmd, opts, func(ctx context.Context, app *application) error {
				card, err := app.reviews.Postpone(ctx, args[0], args[1], days)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "next review %s\n", card.NextReview.Format("2006-01-02 15:04"))
				return nil
			})
		},
	}

	deckCmd.AddCommand(importCmd, list, due, postpone)
	return deckCmd
}
