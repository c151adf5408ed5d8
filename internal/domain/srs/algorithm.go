package srs

import (
	"math"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
)

// calculateNewEaseFactor determines the new ease factor based on the rating.
//
// "again" lowers the ease factor by the configured penalty, "easy" raises it
// by the configured bonus and "good" leaves it unchanged. The result never
// drops below params.MinEaseFactor.
func calculateNewEaseFactor(currentEF float64, rating domain.Rating, params *Params) float64 {
	newEF := currentEF

	switch rating {
	case domain.RatingAgain:
		newEF -= params.AgainPenalty
	case domain.RatingEasy:
		newEF += params.EasyBonus
	}

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	// Keep two decimals so repeated adjustments don't accumulate float noise.
	return math.Round(newEF*100) / 100
}

// calculateNewInterval determines the next interval in days.
//
// Algorithm behavior:
//   - "again" restarts the card at params.ResetInterval
//   - "good" multiplies the interval by the current ease factor
//   - "easy" multiplies the interval by the ease factor plus the easy bonus
//
// Intervals are rounded up so that a card always moves forward by at least
// one day and never returns a fractional day count. The result is capped
// at params.MaxInterval before it is converted to an int.
func calculateNewInterval(currentInterval int, easeFactor float64, rating domain.Rating, params *Params) int {
	var next float64

	switch rating {
	case domain.RatingAgain:
		return params.ResetInterval
	case domain.RatingGood:
		next = ceilDays(float64(currentInterval) * easeFactor)
	case domain.RatingEasy:
		next = ceilDays(float64(currentInterval) * (easeFactor + params.EasyBonus))
	}

	if next < 1 {
		return 1
	}
	if next > float64(params.MaxInterval) {
		return params.MaxInterval
	}
	return int(next)
}

// ceilDays rounds up after trimming float noise, so 5 * 2.8 is 14 and not 15.
func ceilDays(days float64) float64 {
	return math.Ceil(math.Round(days*1e6) / 1e6)
}

// calculateNextReviewDate schedules the card interval days after now.
// The previous NextReview is ignored on purpose so late reviews do not
// accumulate drift.
func calculateNextReviewDate(interval int, now time.Time) time.Time {
	return now.AddDate(0, 0, interval)
}

// calculateNextCard returns an updated copy of card. The input is not
// modified.
func calculateNextCard(card domain.Flashcard, rating domain.Rating, now time.Time, params *Params) domain.Flashcard {
	next := card.Normalize(now)
	if next.EaseFactor < params.MinEaseFactor {
		next.EaseFactor = params.MinEaseFactor
	}

	// The interval uses the ease factor as it was before this review.
	next.Interval = calculateNewInterval(next.Interval, next.EaseFactor, rating, params)
	next.EaseFactor = calculateNewEaseFactor(next.EaseFactor, rating, params)
	next.NextReview = calculateNextReviewDate(next.Interval, now)

	return next
}
