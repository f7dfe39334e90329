package api

import (
	"log/slog"
	"net/http"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/service/auth"
)

// AuthHandler handles token issuance requests.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{jwtService: jwtService}
}

// IssueToken handles POST /jwt. It mints a short-lived session token
// from the supplied identity claims.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), auth.IdentityClaims{
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		slog.Error("failed to generate token", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
