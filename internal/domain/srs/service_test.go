package srs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(t *testing.T, now time.Time) domain.Flashcard {
	t.Helper()
	card, err := domain.NewFlashcard("front", "back", now)
	require.NoError(t, err)
	return card
}

func TestReview(t *testing.T) {
	t.Parallel() // Enable parallel execution
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		interval       int
		easeFactor     float64
		rating         domain.Rating
		wantInterval   int
		wantEaseFactor float64
	}{
		{"again restarts", 12, 2.5, domain.RatingAgain, 1, 2.3},
		{"good keeps ease", 4, 2.5, domain.RatingGood, 10, 2.5},
		{"easy grows ease", 4, 2.5, domain.RatingEasy, 11, 2.65},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := newCard(t, now)
			card.Interval = tc.interval
			card.EaseFactor = tc.easeFactor

			next, err := scheduler.Review(card, tc.rating, now)
			require.NoError(t, err)

			assert.Equal(t, tc.wantInterval, next.Interval)
			assert.InDelta(t, tc.wantEaseFactor, next.EaseFactor, 1e-9)
			assert.True(t, next.NextReview.Equal(now.AddDate(0, 0, tc.wantInterval)))
			assert.Equal(t, card.ID, next.ID)
			assert.Equal(t, tc.interval, card.Interval, "input card must not be modified")
		})
	}
}

func TestReviewInvalidRating(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Now().UTC()

	_, err := scheduler.Review(newCard(t, now), domain.Rating("hard"), now)
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestReviewAgainNeverDropsBelowFloor(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	card := newCard(t, now)

	for i := 0; i < 25; i++ {
		var err error
		card, err = scheduler.Review(card, domain.RatingAgain, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, card.EaseFactor, domain.MinEaseFactor)
		assert.Equal(t, 1, card.Interval)
	}
	assert.Equal(t, domain.MinEaseFactor, card.EaseFactor)
}

func TestReviewEasyStrictlyIncreasesInterval(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	card := newCard(t, now)

	previous := card.Interval
	for i := 0; i < 40; i++ {
		var err error
		card, err = scheduler.Review(card, domain.RatingEasy, now)
		require.NoError(t, err)

		if previous < domain.MaxInterval {
			assert.Greater(t, card.Interval, previous, "review %d", i+1)
		} else {
			assert.Equal(t, domain.MaxInterval, card.Interval, "review %d", i+1)
		}
		assert.LessOrEqual(t, card.Interval, domain.MaxInterval)
		assert.True(t, card.NextReview.Equal(now.AddDate(0, 0, card.Interval)))

		_, err = json.Marshal(card)
		require.NoError(t, err, "review %d", i+1)
		previous = card.Interval
	}
	assert.Equal(t, domain.MaxInterval, card.Interval)
}

func TestReviewRespectsConfiguredMaxInterval(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler(NewParams(ParamsConfig{MaxInterval: 30}))
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	card := newCard(t, now)
	card.Interval = 20

	next, err := scheduler.Review(card, domain.RatingGood, now)
	require.NoError(t, err)
	assert.Equal(t, 30, next.Interval)
}

func TestReviewRecomputesFromNow(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	card := newCard(t, now)
	card.Interval = 2
	card.NextReview = now.AddDate(0, 0, -30) // reviewed a month late

	next, err := scheduler.Review(card, domain.RatingGood, now)
	require.NoError(t, err)
	assert.True(t, next.NextReview.Equal(now.AddDate(0, 0, 5)), "next review is anchored at now, got %v", next.NextReview)
}

func TestReviewNormalizesCorruptCard(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	card := domain.Flashcard{ID: "c1", Front: "f", Back: "b", Interval: 0, EaseFactor: 0.9}
	next, err := scheduler.Review(card, domain.RatingGood, now)
	require.NoError(t, err)

	assert.Equal(t, 2, next.Interval) // 1 * 1.3 → 2
	assert.Equal(t, domain.MinEaseFactor, next.EaseFactor)
}

func TestPostpone(t *testing.T) {
	t.Parallel()
	scheduler := NewDefaultScheduler()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	card := newCard(t, now)

	next, err := scheduler.Postpone(card, 3, now)
	require.NoError(t, err)
	assert.True(t, next.NextReview.Equal(now.AddDate(0, 0, 3)))

	_, err = scheduler.Postpone(card, 0, now)
	assert.ErrorIs(t, err, ErrInvalidDays)

	far, err := scheduler.Postpone(card, 10*domain.MaxInterval, now)
	require.NoError(t, err)
	assert.True(t, far.NextReview.Equal(now.AddDate(0, 0, domain.MaxInterval)))
}

func TestDueCards(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

	card := func(id string, offset time.Duration) domain.Flashcard {
		return domain.Flashcard{ID: id, Front: "f", Back: "b", Interval: 1, EaseFactor: 2.5, NextReview: now.Add(offset)}
	}

	cards := []domain.Flashcard{
		card("minus-1d", -24*time.Hour),
		card("plus-1d", 24*time.Hour),
		card("minus-3d", -72*time.Hour),
	}

	due := DueCards(cards, now)
	require.Len(t, due, 2)
	assert.Equal(t, "minus-3d", due[0].ID)
	assert.Equal(t, "minus-1d", due[1].ID)

	next, ok := NextDue(cards, now)
	require.True(t, ok)
	assert.Equal(t, "minus-3d", next.ID)

	_, ok = NextDue(cards[1:2], now)
	assert.False(t, ok)

	// Exactly now counts as due.
	assert.Len(t, DueCards([]domain.Flashcard{card("now", 0)}, now), 1)
}

func TestNewParams(t *testing.T) {
	t.Parallel()
	params := NewParams(ParamsConfig{EasyBonus: 0.3})

	assert.Equal(t, 0.3, params.EasyBonus)
	assert.Equal(t, 0.2, params.AgainPenalty)
	assert.Equal(t, domain.MinEaseFactor, params.MinEaseFactor)
	assert.Equal(t, 1, params.ResetInterval)
	assert.Equal(t, domain.MaxInterval, params.MaxInterval)

	capped := NewParams(ParamsConfig{ResetInterval: 10, MaxInterval: 5})
	assert.Equal(t, 5, capped.MaxInterval)
	assert.Equal(t, 5, capped.ResetInterval)
}
