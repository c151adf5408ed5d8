package srs

import (
	"errors"
	"sort"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
)

// ErrInvalidDays is returned when a card is postponed by less than a day.
var ErrInvalidDays = errors.New("postpone days must be at least 1")

// Scheduler computes the next review of a flashcard.
type Scheduler struct {
	params *Params
}

// NewDefaultScheduler creates a scheduler with default parameters
func NewDefaultScheduler() *Scheduler {
	return &Scheduler{params: NewDefaultParams()}
}

// NewScheduler creates a scheduler with custom parameters
func NewScheduler(params *Params) *Scheduler {
	if params == nil {
		params = NewDefaultParams()
	}
	return &Scheduler{params: params}
}

// Review returns the card rescheduled after a review with the given rating.
// Unknown ratings are rejected with domain.ErrInvalidRating rather than
// defaulted.
func (s *Scheduler) Review(card domain.Flashcard, rating domain.Rating, now time.Time) (domain.Flashcard, error) {
	if !rating.Valid() {
		return domain.Flashcard{}, domain.ErrInvalidRating
	}

	return calculateNextCard(card, rating, now, s.params), nil
}

// Postpone pushes the next review of a card forward by whole days. The
// result is never later than MaxInterval days after now.
func (s *Scheduler) Postpone(card domain.Flashcard, days int, now time.Time) (domain.Flashcard, error) {
	if days < 1 {
		return domain.Flashcard{}, ErrInvalidDays
	}
	if days > s.params.MaxInterval {
		days = s.params.MaxInterval
	}

	next := card.Normalize(now)
	next.NextReview = next.NextReview.AddDate(0, 0, days)
	if horizon := now.AddDate(0, 0, s.params.MaxInterval); next.NextReview.After(horizon) {
		next.NextReview = horizon
	}
	return next, nil
}

// DueCards returns the cards whose next review is at or before now,
// oldest-overdue first. Cards with equal timestamps keep deck order.
func DueCards(cards []domain.Flashcard, now time.Time) []domain.Flashcard {
	due := make([]domain.Flashcard, 0, len(cards))
	for _, card := range cards {
		if card.IsDue(now) {
			due = append(due, card)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReview.Before(due[j].NextReview)
	})

	return due
}

// NextDue returns the most overdue card, or false when nothing is due.
func NextDue(cards []domain.Flashcard, now time.Time) (domain.Flashcard, bool) {
	due := DueCards(cards, now)
	if len(due) == 0 {
		return domain.Flashcard{}, false
	}
	return due[0], true
}
