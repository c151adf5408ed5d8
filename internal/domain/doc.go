// Package domain contains the core study entities (flashcards, decks and
// review ratings) and the validation rules that keep them consistent. It
// is independent of how state is stored or rendered.
package domain
