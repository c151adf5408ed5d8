package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scheduling bounds shared by the scheduler and by rehydration.
const (
	// InitialInterval is the interval in days given to a new card.
	InitialInterval = 1

	// InitialEaseFactor is the ease factor given to a new card.
	InitialEaseFactor = 2.5

	// MinEaseFactor is the floor below which the ease factor never drops.
	MinEaseFactor = 1.3

	// MaxInterval caps the interval in days. It keeps NextReview well
	// inside the range a JSON timestamp can carry.
	MaxInterval = 36500
)

// Flashcard validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardInterval is returned when the interval is outside
	// [1, MaxInterval] days.
	ErrFlashcardInterval = fmt.Errorf("flashcard interval must be between 1 and %d days", MaxInterval)

	// ErrFlashcardEaseFactor is returned when the ease factor is below the floor.
	ErrFlashcardEaseFactor = fmt.Errorf("flashcard ease factor must be at least %.1f", MinEaseFactor)
)

// Flashcard is a single front/back card together with its spaced
// repetition schedule.
type Flashcard struct {
	ID         string    `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	NextReview time.Time `json:"nextReview"`
	Interval   int       `json:"interval"`   // days, always >= 1
	EaseFactor float64   `json:"easeFactor"` // always >= MinEaseFactor
}

// NewFlashcard creates a card that is due immediately.
func NewFlashcard(front, back string, now time.Time) (Flashcard, error) {
	card := Flashcard{
		ID:         uuid.NewString(),
		Front:      front,
		Back:       back,
		NextReview: now,
		Interval:   InitialInterval,
		EaseFactor: InitialEaseFactor,
	}

	if err := card.Validate(); err != nil {
		return Flashcard{}, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
func (c Flashcard) Validate() error {
	if c.ID == "" {
		return ErrFlashcardIDEmpty
	}

	if c.Front == "" || c.Back == "" {
		return fmt.Errorf("%w: flashcard front and back are required", ErrEmptyContent)
	}

	if c.Interval < 1 || c.Interval > MaxInterval {
		return ErrFlashcardInterval
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrFlashcardEaseFactor
	}

	return nil
}

// Normalize returns a copy of the card with scheduling fields pulled back
// inside their bounds. Cards coming from storage or from the content
// service are normalized before use.
func (c Flashcard) Normalize(now time.Time) Flashcard {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Interval < 1 {
		c.Interval = InitialInterval
	}
	if c.Interval > MaxInterval {
		c.Interval = MaxInterval
	}
	if c.EaseFactor < MinEaseFactor {
		if c.EaseFactor == 0 {
			c.EaseFactor = InitialEaseFactor
		} else {
			c.EaseFactor = MinEaseFactor
		}
	}
	if c.NextReview.IsZero() {
		c.NextReview = now
	}
	if horizon := now.AddDate(0, 0, MaxInterval); c.NextReview.After(horizon) {
		c.NextReview = horizon
	}
	return c
}

// IsDue reports whether the card should be reviewed at now.
func (c Flashcard) IsDue(now time.Time) bool {
	return !c.NextReview.After(now)
}
