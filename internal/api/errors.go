package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/domain"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/service/review"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrDeckNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, state.ErrDomainMissing):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, state.ErrInvalidPayload),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, review.ErrNoCardsDue):
		return http.StatusNoContent

	case errors.Is(err, store.ErrClosed):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrDeckNotFound):
		return "Deck not found"
	case errors.Is(err, domain.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, state.ErrDomainMissing):
		return "Unknown state domain"
	case errors.Is(err, domain.ErrInvalidRating):
		return "Invalid rating"
	case errors.Is(err, state.ErrInvalidPayload):
		return "Invalid request data"
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, store.ErrClosed):
		return "State store is shutting down"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes internal struct names from validator
// errors and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'reviewRequest.Rating' Error:Field validation for 'Rating' failed on the 'oneof' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// respondWithServiceError writes the mapped status and safe message for err.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
