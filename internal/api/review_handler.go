package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/service/review"
	"github.com/go-chi/chi/v5"
)

// Reviewer runs flashcard reviews.
type Reviewer interface {
	DueCards(ctx context.Context, deckID string) ([]domain.Flashcard, error)
	NextCard(ctx context.Context, deckID string) (domain.Flashcard, error)
	Review(ctx context.Context, deckID, cardID string, rating domain.Rating) (review.Result, error)
}

var _ Reviewer = (*review.Service)(nil)

// ReviewRequest is the body of a card review.
type ReviewRequest struct {
	Rating string `json:"rating" validate:"required,oneof=again good easy"`
}

// DueCardsResponse lists the due cards of a deck.
type DueCardsResponse struct {
	DeckID string             `json:"deckId"`
	Due    int                `json:"due"`
	Cards  []domain.Flashcard `json:"cards"`
}

// ReviewHandler handles deck review requests.
type ReviewHandler struct {
	reviewer Reviewer
	logger   *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewer Reviewer, log *slog.Logger) *ReviewHandler {
	if reviewer == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewer cannot be nil for ReviewHandler")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ReviewHandler{
		reviewer: reviewer,
		logger:   log.With(slog.String("component", "review_handler")),
	}
}

// GetDueCards handles GET /api/decks/{deckID}/due.
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	deckID := chi.URLParam(r, "deckID")

	cards, err := h.reviewer.DueCards(r.Context(), deckID)
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to list due cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DueCardsResponse{
		DeckID: deckID,
		Due:    len(cards),
		Cards:  cards,
	})
}

// GetNextCard handles GET /api/decks/{deckID}/next. It answers 204 when
// nothing is due.
func (h *ReviewHandler) GetNextCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	deckID := chi.URLParam(r, "deckID")

	card, err := h.reviewer.NextCard(r.Context(), deckID)
	if errors.Is(err, review.ErrNoCardsDue) {
		log.Debug("no cards due for review", slog.String("deck_id", deckID))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to get next review card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// SubmitReview handles POST /api/decks/{deckID}/cards/{cardID}/review.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	deckID := chi.URLParam(r, "deckID")
	cardID := chi.URLParam(r, "cardID")

	var req ReviewRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	result, err := h.reviewer.Review(r.Context(), deckID, cardID, domain.Rating(req.Rating))
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to submit review")
		return
	}

	log.Debug("review submitted",
		slog.String("deck_id", deckID),
		slog.String("card_id", cardID),
		slog.String("rating", req.Rating))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
