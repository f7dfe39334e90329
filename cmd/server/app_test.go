package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamp/medcamp-api/internal/config"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/service/auth"
	"github.com/medcamp/medcamp-api/internal/store"
)

// Stub stores backing the router wiring tests. Only the methods the
// exercised routes touch return anything meaningful.

type stubCampStore struct{}

func (s *stubCampStore) List(ctx context.Context) ([]domain.Camp, error) { return nil, nil }
func (s *stubCampStore) GetByID(ctx context.Context, id string) (*domain.Camp, error) {
	return &domain.Camp{Name: "Free Eye Checkup"}, nil
}
func (s *stubCampStore) Create(ctx context.Context, camp *domain.Camp) (string, error) {
	return "507f1f77bcf86cd799439011", nil
}
func (s *stubCampStore) Update(ctx context.Context, id string, update domain.CampUpdate) (int64, error) {
	return 1, nil
}

type stubJoinStore struct{}

func (s *stubJoinStore) List(ctx context.Context) ([]domain.JoinRecord, error) { return nil, nil }
func (s *stubJoinStore) ListByEmail(ctx context.Context, email string) ([]domain.JoinRecord, error) {
	return nil, nil
}
func (s *stubJoinStore) FindByCampAndEmail(ctx context.Context, campName, email string) (*domain.JoinRecord, error) {
	return nil, nil
}
func (s *stubJoinStore) Create(ctx context.Context, rec *domain.JoinRecord) (string, error) {
	return "", nil
}
func (s *stubJoinStore) Delete(ctx context.Context, id string) (int64, error) { return 1, nil }
func (s *stubJoinStore) CountByCamp(ctx context.Context) ([]domain.ParticipantCount, error) {
	return nil, nil
}

type stubUserStore struct {
	users map[string]*domain.User
}

func (s *stubUserStore) List(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}
func (s *stubUserStore) Create(ctx context.Context, user *domain.User) (string, error) {
	return "", nil
}
func (s *stubUserStore) Delete(ctx context.Context, id string) (int64, error) { return 1, nil }
func (s *stubUserStore) SetRole(ctx context.Context, id, role string) (int64, error) {
	return 1, nil
}
func (s *stubUserStore) UpdateProfile(ctx context.Context, matchEmail, name, newEmail string) (int64, error) {
	return 1, nil
}

type stubPaymentStore struct{}

func (s *stubPaymentStore) List(ctx context.Context) ([]domain.Payment, error) { return nil, nil }
func (s *stubPaymentStore) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return nil, nil
}
func (s *stubPaymentStore) Create(ctx context.Context, payment *domain.Payment) (string, error) {
	return "507f1f77bcf86cd799439011", nil
}
func (s *stubPaymentStore) Confirm(ctx context.Context, id string) (int64, error) { return 1, nil }

type stubFeedbackStore struct{}

func (s *stubFeedbackStore) List(ctx context.Context) ([]domain.Feedback, error) { return nil, nil }
func (s *stubFeedbackStore) ListByEmailAndCamp(ctx context.Context, email, campID string) ([]domain.Feedback, error) {
	return nil, nil
}
func (s *stubFeedbackStore) FindByCampAndEmail(ctx context.Context, campID, email string) (*domain.Feedback, error) {
	return nil, nil
}
func (s *stubFeedbackStore) Create(ctx context.Context, fb *domain.Feedback) (string, error) {
	return "", nil
}

type stubIntentCreator struct{}

func (s *stubIntentCreator) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	return "pi_secret", nil
}

func newTestApplication(t *testing.T) (*application, auth.JWTService) {
	t.Helper()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "router-test-secret-with-32-chars-min",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	app := &application{
		config:    &config.Config{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		campStore: &stubCampStore{},
		joinStore: &stubJoinStore{},
		userStore: &stubUserStore{users: map[string]*domain.User{
			"admin@example.com":  {Email: "admin@example.com", Role: domain.RoleAdmin},
			"member@example.com": {Email: "member@example.com", Role: domain.RoleMember},
		}},
		paymentStore:  &stubPaymentStore{},
		feedbackStore: &stubFeedbackStore{},
		jwtService:    jwtService,
		intents:       &stubIntentCreator{},
	}
	return app, jwtService
}

func bearerToken(t *testing.T, svc auth.JWTService, email string) string {
	t.Helper()

	token, err := svc.GenerateToken(context.Background(), auth.IdentityClaims{Email: email})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_GuardWiring(t *testing.T) {
	t.Parallel()

	app, jwtService := newTestApplication(t)
	router := app.setupRouter()

	adminAuth := bearerToken(t, jwtService, "admin@example.com")
	memberAuth := bearerToken(t, jwtService, "member@example.com")

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		auth           string
		expectedStatus int
	}{
		{
			name:           "liveness is public",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "camp listing is public",
			method:         http.MethodGet,
			path:           "/camps",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "payment history requires a token",
			method:         http.MethodGet,
			path:           "/payments/member@example.com",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "payment history with token",
			method:         http.MethodGet,
			path:           "/payments/member@example.com",
			auth:           memberAuth,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "user listing requires a token",
			method:         http.MethodGet,
			path:           "/users",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "user listing rejects members",
			method:         http.MethodGet,
			path:           "/users",
			auth:           memberAuth,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "user listing allows admins",
			method:         http.MethodGet,
			path:           "/users",
			auth:           adminAuth,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "camp creation rejects members",
			method:         http.MethodPost,
			path:           "/camps",
			body:           `{"name":"Dental Camp","fees":10,"location":"Dhaka","dateTime":"2026-10-01T09:00","healthcareProfessional":"Dr. Akter"}`,
			auth:           memberAuth,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "camp creation allows admins",
			method:         http.MethodPost,
			path:           "/camps",
			body:           `{"name":"Dental Camp","fees":10,"location":"Dhaka","dateTime":"2026-10-01T09:00","healthcareProfessional":"Dr. Akter"}`,
			auth:           adminAuth,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "payment confirmation rejects members",
			method:         http.MethodPatch,
			path:           "/payments/507f1f77bcf86cd799439011",
			auth:           memberAuth,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin check is scoped to the caller",
			method:         http.MethodGet,
			path:           "/users/admin/admin@example.com",
			auth:           memberAuth,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin check for own identity",
			method:         http.MethodGet,
			path:           "/users/admin/member@example.com",
			auth:           memberAuth,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRouter_Liveness(t *testing.T) {
	t.Parallel()

	app, _ := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MedCamp is sitting", rec.Body.String())
}
