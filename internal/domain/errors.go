// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidRating is returned when a review rating is not one of
	// again, good or easy.
	ErrInvalidRating = errors.New("invalid review rating")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrDeckNotFound is returned when a flashcard deck does not exist.
	ErrDeckNotFound = errors.New("flashcard deck not found")

	// ErrCardNotFound is returned when a flashcard does not exist in its deck.
	ErrCardNotFound = errors.New("flashcard not found")
)
