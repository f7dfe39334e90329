package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamp/medcamp-api/internal/api/middleware"
	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/store"
)

// mockJWTService is a mock implementation of auth.JWTService
type mockJWTService struct {
	ValidateErr error
	Claims      *auth.Claims
}

func (m *mockJWTService) GenerateToken(ctx context.Context, identity auth.IdentityClaims) (string, error) {
	return "mock-token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.Claims, m.ValidateErr
}

// mockUserStore is a mock implementation of store.UserStore
type mockUserStore struct {
	User       *domain.User
	GetErr     error
	GetCalls   int
	LastLookup string
}

func (m *mockUserStore) List(ctx context.Context) ([]domain.User, error) { return nil, nil }

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.GetCalls++
	m.LastLookup = email
	return m.User, m.GetErr
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) (string, error) {
	return "", nil
}

func (m *mockUserStore) Delete(ctx context.Context, id string) (int64, error) { return 0, nil }

func (m *mockUserStore) SetRole(ctx context.Context, id, role string) (int64, error) {
	return 0, nil
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, matchEmail, name, newEmail string) (int64, error) {
	return 0, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedEmail  string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{Email: "member@example.com"},
			expectedStatus: http.StatusOK,
			expectedEmail:  "member@example.com",
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			authMiddleware := middleware.NewAuthMiddleware(jwtService, &mockUserStore{})

			var capturedEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := middleware.GetClaims(r); ok {
					capturedEmail = claims.Email
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			authMiddleware.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedEmail != "" {
				assert.Equal(t, tt.expectedEmail, capturedEmail)
			}
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "unauthorized access")
			}
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		claims         *auth.Claims
		user           *domain.User
		getErr         error
		expectedStatus int
	}{
		{
			name:           "admin user proceeds",
			claims:         &auth.Claims{Email: "admin@example.com"},
			user:           &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "member user forbidden",
			claims:         &auth.Claims{Email: "member@example.com"},
			user:           &domain.User{Email: "member@example.com", Role: domain.RoleMember},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "unknown user forbidden",
			claims:         &auth.Claims{Email: "ghost@example.com"},
			getErr:         store.ErrUserNotFound,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing claims unauthorized",
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "store failure is a server error",
			claims:         &auth.Claims{Email: "admin@example.com"},
			getErr:         assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &mockUserStore{User: tt.user, GetErr: tt.getErr}
			authMiddleware := middleware.NewAuthMiddleware(&mockJWTService{}, userStore)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.claims != nil {
				ctx := context.WithValue(req.Context(), shared.ClaimsContextKey, tt.claims)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			authMiddleware.RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.claims != nil {
				require.Equal(t, 1, userStore.GetCalls)
				assert.Equal(t, tt.claims.Email, userStore.LastLookup)
			}
		})
	}
}

// The admin gate reads the store on every call; a role change must be
// visible on the next request without any cache invalidation step.
func TestAuthMiddleware_RequireAdmin_NoCaching(t *testing.T) {
	t.Parallel()

	userStore := &mockUserStore{
		User: &domain.User{Email: "admin@example.com", Role: domain.RoleAdmin},
	}
	authMiddleware := middleware.NewAuthMiddleware(&mockJWTService{}, userStore)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	claims := &auth.Claims{Email: "admin@example.com"}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req = req.WithContext(context.WithValue(req.Context(), shared.ClaimsContextKey, claims))
		rec := httptest.NewRecorder()
		authMiddleware.RequireAdmin(next).ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 3, userStore.GetCalls)
}
