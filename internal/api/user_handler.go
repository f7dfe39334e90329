package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medcamp/medcamp-api/internal/api/middleware"
	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/store"
)

// UserHandler handles user registration and administration requests.
type UserHandler struct {
	userStore store.UserStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore) *UserHandler {
	return &UserHandler{userStore: userStore}
}

// RegisterUser handles POST /users. Registration is idempotent: an
// existing email is a no-op success with a null inserted ID, never an
// error and never a second document.
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{
			Message:    "user already exists",
			InsertedID: nil,
		})
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	user := &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      domain.RoleMember,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.userStore.Create(r.Context(), user)
	if err != nil {
		// A racing registration for the same email is still a no-op success.
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{
				Message:    "user already exists",
				InsertedID: nil,
			})
			return
		}
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InsertResponse{InsertedID: &id})
}

// ListUsers handles GET /users. Admin only.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// ListProfiles handles GET /userProfile, which carries no auth guard in
// the deployed contract.
func (h *UserHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	h.ListUsers(w, r)
}

// CheckAdmin handles GET /users/admin/{email}. The caller may only ask
// about their own verified identity.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims, ok := middleware.GetClaims(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
		return
	}
	if claims.Email != email {
		shared.RespondWithError(w, r, http.StatusForbidden, "forbidden access")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, AdminCheckResponse{Admin: false})
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AdminCheckResponse{Admin: user.IsAdmin()})
}

// DeleteUser handles DELETE /users/{id}. Admin only.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:      true,
		DeletedCount: deleted,
	})
}

// PromoteUser handles PATCH /users/admin/{id}. Admin only. The
// operation is idempotent: promoting an existing admin succeeds and
// leaves the role unchanged.
func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	matched, err := h.userStore.SetRole(r.Context(), id, domain.RoleAdmin)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to promote user")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{MatchedCount: matched})
}

// UpdateProfile handles PATCH /updateProfile?email=. The target user is
// selected by the query-supplied email, which is part of the deployed
// contract for this route.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	matchEmail := r.URL.Query().Get("email")
	if matchEmail == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: email query parameter is required")
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	matched, err := h.userStore.UpdateProfile(r.Context(), matchEmail, req.Name, req.Email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{
		Message:      "Profile updated successfully",
		MatchedCount: matched,
	})
}
