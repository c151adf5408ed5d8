package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	card, err := NewFlashcard("What is Go?", "A programming language", now)
	require.NoError(t, err)

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 2.5, card.EaseFactor)
	assert.True(t, card.NextReview.Equal(now), "new cards are due immediately")
	assert.True(t, card.IsDue(now))

	_, err = NewFlashcard("", "back", now)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestFlashcardValidate(t *testing.T) {
	t.Parallel()
	valid := Flashcard{ID: "c1", Front: "f", Back: "b", Interval: 1, EaseFactor: 2.5}

	testCases := []struct {
		name    string
		mutate  func(c *Flashcard)
		wantErr error
	}{
		{name: "valid card", mutate: func(c *Flashcard) {}},
		{name: "missing id", mutate: func(c *Flashcard) { c.ID = "" }, wantErr: ErrFlashcardIDEmpty},
		{name: "zero interval", mutate: func(c *Flashcard) { c.Interval = 0 }, wantErr: ErrFlashcardInterval},
		{name: "interval above cap", mutate: func(c *Flashcard) { c.Interval = MaxInterval + 1 }, wantErr: ErrFlashcardInterval},
		{name: "ease below floor", mutate: func(c *Flashcard) { c.EaseFactor = 1.29 }, wantErr: ErrFlashcardEaseFactor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := valid
			tc.mutate(&card)
			err := card.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFlashcardNormalize(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	card := Flashcard{Front: "f", Back: "b", Interval: -4, EaseFactor: 0.7}
	normalized := card.Normalize(now)

	assert.NotEmpty(t, normalized.ID)
	assert.Equal(t, 1, normalized.Interval)
	assert.Equal(t, MinEaseFactor, normalized.EaseFactor)
	assert.True(t, normalized.NextReview.Equal(now))
	assert.NoError(t, normalized.Validate())

	// A missing ease factor is treated as a new card.
	fresh := Flashcard{ID: "c", Front: "f", Back: "b"}.Normalize(now)
	assert.Equal(t, InitialEaseFactor, fresh.EaseFactor)
}

func TestFlashcardNormalizeClampsSchedule(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	card := Flashcard{
		ID:         "c",
		Front:      "f",
		Back:       "b",
		Interval:   MaxInterval * 10,
		EaseFactor: 3,
		NextReview: time.Date(9000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	normalized := card.Normalize(now)

	assert.Equal(t, MaxInterval, normalized.Interval)
	assert.True(t, normalized.NextReview.Equal(now.AddDate(0, 0, MaxInterval)))
	assert.NoError(t, normalized.Validate())

	_, err := json.Marshal(normalized)
	assert.NoError(t, err)

	assert.ErrorIs(t, card.Validate(), ErrFlashcardInterval)
}

func TestParseRating(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"again", "good", "easy"} {
		r, err := ParseRating(s)
		require.NoError(t, err)
		assert.Equal(t, Rating(s), r)
	}

	_, err := ParseRating("hard")
	assert.ErrorIs(t, err, ErrInvalidRating)
}
