package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDeckIDEmpty is returned when a deck ID is empty.
var ErrDeckIDEmpty = errors.New("flashcard deck ID cannot be empty")

// FlashcardDeck owns an ordered list of flashcards. Cards keep their
// creation order; review order is derived by the scheduler.
type FlashcardDeck struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Source    string      `json:"source,omitempty"`
	Cards     []Flashcard `json:"cards"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewFlashcardDeck creates a deck from front/back pairs, typically the
// structured output of the content generation service.
func NewFlashcardDeck(title, source string, pairs [][2]string, now time.Time) (FlashcardDeck, error) {
	deck := FlashcardDeck{
		ID:        uuid.NewString(),
		Title:     title,
		Source:    source,
		Cards:     make([]Flashcard, 0, len(pairs)),
		CreatedAt: now,
	}

	for _, pair := range pairs {
		card, err := NewFlashcard(pair[0], pair[1], now)
		if err != nil {
			return FlashcardDeck{}, err
		}
		deck.Cards = append(deck.Cards, card)
	}

	return deck, nil
}

// Validate checks the deck and every card it owns.
func (d FlashcardDeck) Validate() error {
	if d.ID == "" {
		return ErrDeckIDEmpty
	}
	for _, card := range d.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Card looks up a card by id.
func (d FlashcardDeck) Card(id string) (Flashcard, error) {
	for _, card := range d.Cards {
		if card.ID == id {
			return card, nil
		}
	}
	return Flashcard{}, ErrCardNotFound
}

// WithCard returns a copy of the deck in which the card with the same id
// is replaced. The card order is preserved. The receiver is not modified.
func (d FlashcardDeck) WithCard(card Flashcard) (FlashcardDeck, error) {
	cards := make([]Flashcard, len(d.Cards))
	copy(cards, d.Cards)

	for i := range cards {
		if cards[i].ID == card.ID {
			cards[i] = card
			d.Cards = cards
			return d, nil
		}
	}

	return FlashcardDeck{}, ErrCardNotFound
}
