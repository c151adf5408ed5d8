// Package review runs a flashcard review against the persisted state:
// it reschedules the card, writes it back into its deck, awards XP and credits
// the study streak.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain/srs"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
)

// ErrNoCardsDue indicates that no card in the deck is due for review.
var ErrNoCardsDue = errors.New("no cards due for review")

// XP awarded per rating.
var xpForRating = map[domain.Rating]int{
	domain.RatingAgain: 1,
	domain.RatingGood:  5,
	domain.RatingEasy:  10,
}

// Dispatcher is the part of the application store the service needs.
type Dispatcher interface {
	State() *state.AppState
	Dispatch(action state.Action) error
}

// Result describes a completed review.
type Result struct {
	Card      domain.Flashcard `json:"card"`
	XPAwarded int              `json:"xpAwarded"`
	Level     int              `json:"level"`
	XP        int              `json:"xp"`
	Streak    int              `json:"streak"`
}

// ServiceError wraps errors from the review service with the operation
// that failed.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newReviewError(message string, err error) *ServiceError {
	return &ServiceError{Operation: "review", Message: message, Err: err}
}

// Service reviews flashcards held in the application state. Reviews and
// postpones are serialized so each one reads the card it reschedules
// after the previous one has been applied.
type Service struct {
	mu        sync.Mutex
	store     Dispatcher
	scheduler *srs.Scheduler
	clock     func() time.Time
	logger    *slog.Logger
}

// NewService creates a review service. A nil scheduler uses the default
// parameters, a nil clock uses time.Now and a nil logger slog.Default().
func NewService(store Dispatcher, scheduler *srs.Scheduler, clock func() time.Time, log *slog.Logger) *Service {
	if store == nil {
		panic("store cannot be nil")
	}
	if scheduler == nil {
		scheduler = srs.NewDefaultScheduler()
	}
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		store:     store,
		scheduler: scheduler,
		clock:     clock,
		logger:    log.With(slog.String("component", "review_service")),
	}
}

func (s *Service) deck(deckID string) (domain.FlashcardDeck, error) {
	deck, ok := s.store.State().StudyAids.Deck(deckID)
	if !ok {
		return domain.FlashcardDeck{}, domain.ErrDeckNotFound
	}
	return deck, nil
}

// DueCards returns the cards of a deck that are due now, most overdue
// first.
func (s *Service) DueCards(ctx context.Context, deckID string) ([]domain.Flashcard, error) {
	deck, err := s.deck(deckID)
	if err != nil {
		return nil, err
	}

	due := srs.DueCards(deck.Cards, s.clock())
	logger.FromContextOrDefault(ctx, s.logger).Debug("selected due cards",
		slog.String("deck_id", deckID),
		slog.Int("due", len(due)),
		slog.Int("total", len(deck.Cards)))
	return due, nil
}

// NextCard returns the most overdue card of a deck, or ErrNoCardsDue.
func (s *Service) NextCard(ctx context.Context, deckID string) (domain.Flashcard, error) {
	deck, err := s.deck(deckID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	card, ok := srs.NextDue(deck.Cards, s.clock())
	if !ok {
		logger.FromContextOrDefault(ctx, s.logger).Debug("no cards due for review",
			slog.String("deck_id", deckID))
		return domain.Flashcard{}, ErrNoCardsDue
	}
	return card, nil
}

// Review reschedules a card with the given rating and credits the
// learner. The card update, XP award and streak check are separate
// dispatches; if a later one fails the earlier ones stay applied.
func (s *Service) Review(ctx context.Context, deckID, cardID string, rating domain.Rating) (Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(
		slog.String("deck_id", deckID),
		slog.String("card_id", cardID))

	if !rating.Valid() {
		return Result{}, domain.ErrInvalidRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return Result{}, err
	}
	card, err := deck.Card(cardID)
	if err != nil {
		return Result{}, err
	}

	now := s.clock()
	next, err := s.scheduler.Review(card, rating, now)
	if err != nil {
		return Result{}, err
	}

	update := state.FlashcardUpdate{DeckID: deckID, Card: next}
	if err := s.store.Dispatch(state.NewAction(state.ActionUpdateFlashcard, update)); err != nil {
		log.Error("failed to update card", slog.String("error", err.Error()))
		return Result{}, newReviewError("failed to update card", err)
	}

	xp := xpForRating[rating]
	if err := s.store.Dispatch(state.NewAction(state.ActionAddXP, xp)); err != nil {
		log.Error("failed to award xp", slog.String("error", err.Error()))
		return Result{}, newReviewError("failed to award xp", err)
	}
	if err := s.store.Dispatch(state.NewAction(state.ActionCheckStreak, nil)); err != nil {
		log.Error("failed to check streak", slog.String("error", err.Error()))
		return Result{}, newReviewError("failed to check streak", err)
	}

	g := s.store.State().Gamification
	log.Info("card reviewed",
		slog.String("rating", string(rating)),
		slog.Int("interval", next.Interval),
		slog.Time("next_review", next.NextReview))

	return Result{
		Card:      next,
		XPAwarded: xp,
		Level:     g.Level,
		XP:        g.XP,
		Streak:    g.Streak,
	}, nil
}

// Postpone pushes a card's next review forward by whole days without
// touching its interval or ease. No XP is awarded.
func (s *Service) Postpone(ctx context.Context, deckID, cardID string, days int) (domain.Flashcard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.deck(deckID)
	if err != nil {
		return domain.Flashcard{}, err
	}
	card, err := deck.Card(cardID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	next, err := s.scheduler.Postpone(card, days, s.clock())
	if err != nil {
		return domain.Flashcard{}, err
	}

	update := state.FlashcardUpdate{DeckID: deckID, Card: next}
	if err := s.store.Dispatch(state.NewAction(state.ActionUpdateFlashcard, update)); err != nil {
		return domain.Flashcard{}, &ServiceError{Operation: "postpone", Message: "failed to update card", Err: err}
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("card postponed",
		slog.String("deck_id", deckID),
		slog.String("card_id", cardID),
		slog.Int("days", days),
		slog.Time("next_review", next.NextReview))
	return next, nil
}
