package domain

// Rating is the learner's self-assessment after reviewing a card.
type Rating string

// Possible rating values
const (
	RatingAgain Rating = "again"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// ParseRating converts user input into a Rating.
// Returns ErrInvalidRating for anything else.
func ParseRating(s string) (Rating, error) {
	r := Rating(s)
	if !r.Valid() {
		return "", ErrInvalidRating
	}
	return r, nil
}

// Valid reports whether r is a known rating.
func (r Rating) Valid() bool {
	switch r {
	case RatingAgain, RatingGood, RatingEasy:
		return true
	default:
		return false
	}
}
