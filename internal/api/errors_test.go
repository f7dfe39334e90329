package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medcamp/medcamp-api/internal/api"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, expected: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, expected: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, expected: http.StatusUnauthorized},
		{name: "unauthorized", err: domain.ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, expected: http.StatusForbidden},
		{name: "user not found", err: store.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "camp not found", err: store.ErrCampNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrPaymentNotFound), expected: http.StatusNotFound},
		{name: "already joined", err: store.ErrAlreadyJoined, expected: http.StatusBadRequest},
		{name: "feedback exists", err: store.ErrFeedbackExists, expected: http.StatusBadRequest},
		{name: "email exists", err: store.ErrEmailExists, expected: http.StatusBadRequest},
		{name: "validation", err: domain.ErrValidation, expected: http.StatusBadRequest},
		{name: "invalid id", err: domain.ErrInvalidID, expected: http.StatusBadRequest},
		{name: "wrapped invalid id", err: domain.NewValidationError("id", "bad hex", domain.ErrInvalidID), expected: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: "Internal Server Error"},
		{name: "auth", err: auth.ErrExpiredToken, expected: "unauthorized access"},
		{name: "forbidden", err: domain.ErrForbidden, expected: "forbidden access"},
		{name: "already joined", err: store.ErrAlreadyJoined, expected: "You have already joined this camp."},
		{name: "feedback exists", err: store.ErrFeedbackExists, expected: "Feedback already submitted for this camp."},
		{name: "email exists", err: store.ErrEmailExists, expected: "user already exists"},
		{name: "camp not found", err: store.ErrCampNotFound, expected: "Camp not found"},
		{name: "payment not found", err: store.ErrPaymentNotFound, expected: "Payment not found"},
		{name: "internal detail hidden", err: errors.New("dial tcp 10.0.0.1: connection refused"), expected: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, api.GetSafeErrorMessage(tt.err))
		})
	}
}
