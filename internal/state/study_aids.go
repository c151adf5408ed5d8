package state

import (
	"fmt"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
)

// Study aid action types.
const (
	ActionSetStudyAidsLoading ActionType = "SET_STUDY_AIDS_LOADING"
	ActionSetStudyAidsError   ActionType = "SET_STUDY_AIDS_ERROR"
	ActionAddFlashcardDeck    ActionType = "ADD_FLASHCARD_DECK"
	ActionUpdateFlashcardDeck ActionType = "UPDATE_FLASHCARD_DECK"
	ActionUpdateFlashcard     ActionType = "UPDATE_FLASHCARD"
	ActionDeleteFlashcardDeck ActionType = "DELETE_FLASHCARD_DECK"
	ActionAddSummary          ActionType = "ADD_SUMMARY"
	ActionDeleteSummary       ActionType = "DELETE_SUMMARY"
)

// Summary is a generated summary of study material.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FlashcardUpdate replaces one card of a deck. It is applied to the deck
// as it is when the action is reduced, so concurrent updates to other
// cards of the same deck are kept.
type FlashcardUpdate struct {
	DeckID string           `json:"deckId"`
	Card   domain.Flashcard `json:"card"`
}

// StudyAidsState holds flashcard decks and summaries.
type StudyAidsState struct {
	Decks     []domain.FlashcardDeck `json:"flashcardDecks"`
	Summaries []Summary              `json:"summaries"`

	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error"`
}

// Deck returns the deck with the given id.
func (s *StudyAidsState) Deck(id string) (domain.FlashcardDeck, bool) {
	if i := indexOf(s.Decks, id, deckID); i >= 0 {
		return s.Decks[i], true
	}
	return domain.FlashcardDeck{}, false
}

func deckID(d domain.FlashcardDeck) string { return d.ID }

func summaryID(s Summary) string { return s.ID }

// StudyAidsDomain builds the study-aids domain.
func StudyAidsDomain(deps Deps) Domain[StudyAidsState] {
	return Domain[StudyAidsState]{
		Key: KeyStudyAids,
		Initial: func() StudyAidsState {
			return StudyAidsState{Decks: []domain.FlashcardDeck{}, Summaries: []Summary{}}
		},
		Reducer: func(s *StudyAidsState, a Action) (*StudyAidsState, error) {
			return reduceStudyAids(deps, s, a)
		},
		Volatile: func(s StudyAidsState) StudyAidsState {
			s.IsLoading = false
			s.Error = ""
			return s
		},
		Repair: func(s StudyAidsState) StudyAidsState {
			now := deps.now()
			decks := make([]domain.FlashcardDeck, 0, len(s.Decks))
			for _, deck := range s.Decks {
				if deck.ID == "" {
					continue
				}
				cards := make([]domain.Flashcard, 0, len(deck.Cards))
				for _, card := range deck.Cards {
					cards = append(cards, card.Normalize(now))
				}
				deck.Cards = cards
				decks = append(decks, deck)
			}
			s.Decks = decks
			s.Summaries = nonNil(s.Summaries)
			return s
		},
	}
}

func validDeck(a Action) (domain.FlashcardDeck, error) {
	deck, err := payloadAs[domain.FlashcardDeck](a)
	if err != nil {
		return deck, err
	}
	if err := deck.Validate(); err != nil {
		return deck, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, a.Type, err)
	}
	deck.Cards = nonNil(deck.Cards)
	return deck, nil
}

func reduceStudyAids(deps Deps, s *StudyAidsState, a Action) (*StudyAidsState, error) {
	switch a.Type {
	case ActionSetStudyAidsLoading:
		loading, err := payloadAs[bool](a)
		if err != nil {
			return nil, err
		}
		if s.IsLoading == loading {
			return s, nil
		}
		next := *s
		next.IsLoading = loading
		if loading {
			next.Error = ""
		}
		return &next, nil

	case ActionSetStudyAidsError:
		msg, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		next := *s
		next.Error = msg
		next.IsLoading = false
		return &next, nil

	case ActionAddFlashcardDeck:
		deck, err := validDeck(a)
		if err != nil {
			return nil, err
		}
		if deck.CreatedAt.IsZero() {
			deck.CreatedAt = deps.now()
		}
		decks, added := appendNew(s.Decks, deck, deckID)
		if !added && !s.IsLoading {
			return s, nil
		}
		next := *s
		next.Decks = decks
		next.IsLoading = false
		return &next, nil

	case ActionUpdateFlashcardDeck:
		deck, err := validDeck(a)
		if err != nil {
			return nil, err
		}
		next := *s
		next.Decks = upsert(s.Decks, deck, deckID)
		return &next, nil

	case ActionUpdateFlashcard:
		update, err := payloadAs[FlashcardUpdate](a)
		if err != nil {
			return nil, err
		}
		if err := update.Card.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, a.Type, err)
		}
		i := indexOf(s.Decks, update.DeckID, deckID)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, a.Type, domain.ErrDeckNotFound)
		}
		deck, err := s.Decks[i].WithCard(update.Card)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPayload, a.Type, err)
		}
		next := *s
		next.Decks = make([]domain.FlashcardDeck, len(s.Decks))
		copy(next.Decks, s.Decks)
		next.Decks[i] = deck
		return &next, nil

	case ActionDeleteFlashcardDeck:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		decks, removed := removeWhere(s.Decks, func(d domain.FlashcardDeck) bool { return d.ID == id })
		if !removed {
			return s, nil
		}
		next := *s
		next.Decks = decks
		return &next, nil

	case ActionAddSummary:
		summary, err := payloadAs[Summary](a)
		if err != nil {
			return nil, err
		}
		if summary.ID == "" {
			return nil, invalid(a, "summary id is required")
		}
		if summary.CreatedAt.IsZero() {
			summary.CreatedAt = deps.now()
		}
		summaries, added := appendNew(s.Summaries, summary, summaryID)
		if !added && !s.IsLoading {
			return s, nil
		}
		next := *s
		next.Summaries = summaries
		next.IsLoading = false
		return &next, nil

	case ActionDeleteSummary:
		id, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		summaries, removed := removeWhere(s.Summaries, func(x Summary) bool { return x.ID == id })
		if !removed {
			return s, nil
		}
		next := *s
		next.Summaries = summaries
		return &next, nil
	}

	return s, nil
}
