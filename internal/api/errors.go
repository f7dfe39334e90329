package api

import (
	"errors"
	"net/http"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based
// on the error type. This prevents leaking internal error types or
// messages to clients. Duplicate join/feedback submissions map to 400,
// which is the platform's long-standing rejection contract.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicate natural keys and malformed payloads
	case store.IsDuplicateError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Internal Server Error"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized access"

	case errors.Is(err, domain.ErrForbidden):
		return "forbidden access"

	case errors.Is(err, store.ErrAlreadyJoined):
		return "You have already joined this camp."

	case errors.Is(err, store.ErrFeedbackExists):
		return "Feedback already submitted for this camp."

	case errors.Is(err, store.ErrEmailExists):
		return "user already exists"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCampNotFound),
		errors.Is(err, store.ErrJoinRecordNotFound):
		return "Camp not found"

	case errors.Is(err, store.ErrPaymentNotFound):
		return "Payment not found"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail):
		return "Validation error"

	default:
		return "Internal Server Error"
	}
}

// HandleAPIError writes the response for an error that escaped a
// handler, using the error-to-status mapping. When userMessage is
// empty the sanitized message derived from the error is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
