package srs

import (
	"testing"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
)

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  int
		ef       float64
		rating   domain.Rating
		expected int
	}{
		{
			name:     "Again rating should restart interval",
			current:  10,
			ef:       2.5,
			rating:   domain.RatingAgain,
			expected: 1,
		},
		{
			name:     "Good rating should multiply by ease factor",
			current:  10,
			ef:       2.5,
			rating:   domain.RatingGood,
			expected: 25, // 10 * 2.5 = 25
		},
		{
			name:     "Good rating rounds up",
			current:  3,
			ef:       1.3,
			rating:   domain.RatingGood,
			expected: 4, // 3 * 1.3 = 3.9 → 4
		},
		{
			name:     "Easy rating should add the bonus to the multiplier",
			current:  10,
			ef:       2.5,
			rating:   domain.RatingEasy,
			expected: 27, // 10 * 2.65 = 26.5 → 27
		},
		{
			name:     "Exact products are not bumped by float noise",
			current:  5,
			ef:       2.65,
			rating:   domain.RatingEasy,
			expected: 14, // 5 * 2.8 = 14
		},
		{
			name:     "First good review of a new card",
			current:  1,
			ef:       2.5,
			rating:   domain.RatingGood,
			expected: 3, // 1 * 2.5 = 2.5 → 3
		},
		{
			name:     "Interval is capped at the maximum",
			current:  30000,
			ef:       2.5,
			rating:   domain.RatingEasy,
			expected: domain.MaxInterval,
		},
		{
			name:     "Huge products do not overflow",
			current:  domain.MaxInterval,
			ef:       1e300,
			rating:   domain.RatingGood,
			expected: domain.MaxInterval,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval := calculateNewInterval(tc.current, tc.ef, tc.rating, params)

			if newInterval != tc.expected {
				t.Errorf("Expected interval %d, got %d", tc.expected, newInterval)
			}
		})
	}
}

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		rating   domain.Rating
		expected float64
	}{
		{
			name:     "Again rating should decrease ease factor",
			current:  2.5,
			rating:   domain.RatingAgain,
			expected: 2.3, // 2.5 - 0.2 = 2.3
		},
		{
			name:     "Good rating should not change ease factor",
			current:  2.5,
			rating:   domain.RatingGood,
			expected: 2.5,
		},
		{
			name:     "Easy rating should increase ease factor",
			current:  2.5,
			rating:   domain.RatingEasy,
			expected: 2.65, // 2.5 + 0.15 = 2.65
		},
		{
			name:     "Ease factor should not go below minimum",
			current:  1.4,
			rating:   domain.RatingAgain,
			expected: 1.3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newEF := calculateNewEaseFactor(tc.current, tc.rating, params)

			if newEF != tc.expected {
				t.Errorf("Expected ease factor %.2f, got %.2f", tc.expected, newEF)
			}
		})
	}
}

func TestCalculateNextReviewDate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	got := calculateNextReviewDate(5, now)
	expected := time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)

	if !got.Equal(expected) {
		t.Errorf("Expected next review %v, got %v", expected, got)
	}
}
