package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
)

// getPathID extracts a document ID from the URL path parameters,
// validating that it is a well-formed ObjectID hex string.
func getPathID(r *http.Request, paramName string) (string, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	if _, err := primitive.ObjectIDFromHex(pathParam); err != nil {
		return "", domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return pathParam, nil
}

// decodeAndValidate decodes the request body into v and runs schema
// validation. On failure it writes the error response and returns false;
// the handler should return immediately.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return false
	}
	return true
}
