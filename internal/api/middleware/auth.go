package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/store"
)

// AuthMiddleware provides JWT authentication and admin gating for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token from the Authorization header
// and adds the verified claims to the request context. Handlers must
// take the caller's identity from those claims, never from a
// client-supplied field.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects callers whose stored role is not administrator.
// It must be composed after Authenticate. Every admin-gated call pays
// one user lookup; there is deliberately no role cache, so a promotion
// or demotion takes effect on the next request.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusForbidden, "forbidden access")
				return
			}
			slog.Error("failed to look up user for admin check", "error", err, "email", claims.Email)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if !user.IsAdmin() {
			shared.RespondWithError(w, r, http.StatusForbidden, "forbidden access")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaims extracts the verified token claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
