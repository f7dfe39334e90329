package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/store"
)

// JoinHandler handles camp registration requests.
type JoinHandler struct {
	joinStore store.JoinStore
}

// NewJoinHandler creates a new JoinHandler with the given dependencies.
func NewJoinHandler(joinStore store.JoinStore) *JoinHandler {
	return &JoinHandler{joinStore: joinStore}
}

// JoinCamp handles POST /joinCamp. The (campName, email) natural key is
// checked before the insert; a duplicate is rejected without a write.
// The unique index backs this up against racing submissions, and a
// duplicate-key insert failure maps to the same rejection.
func (h *JoinHandler) JoinCamp(w http.ResponseWriter, r *http.Request) {
	var req JoinCampRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.joinStore.FindByCampAndEmail(r.Context(), req.CampName, req.Email)
	if err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "You have already joined this camp.")
		return
	}
	if !errors.Is(err, store.ErrJoinRecordNotFound) {
		HandleAPIError(w, r, err, "Failed to join camp")
		return
	}

	rec := &domain.JoinRecord{
		CampName:        req.CampName,
		Email:           req.Email,
		ParticipantName: req.ParticipantName,
		Fees:            req.Fees,
		Location:        req.Location,
		Age:             req.Age,
		Phone:           req.Phone,
		Gender:          req.Gender,
		CreatedAt:       time.Now().UTC(),
	}

	id, err := h.joinStore.Create(r.Context(), rec)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyJoined) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "You have already joined this camp.")
			return
		}
		HandleAPIError(w, r, err, "Failed to join camp")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: &id})
}

// ListJoins handles GET /joinCamp.
func (h *JoinHandler) ListJoins(w http.ResponseWriter, r *http.Request) {
	recs, err := h.joinStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if recs == nil {
		recs = []domain.JoinRecord{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recs)
}

// ListJoinsByEmail handles GET /joinCamp/{email}.
func (h *JoinHandler) ListJoinsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	recs, err := h.joinStore.ListByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if recs == nil {
		recs = []domain.JoinRecord{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, recs)
}

// ParticipantCounts handles GET /campParticipantsCount.
func (h *JoinHandler) ParticipantCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.joinStore.CountByCamp(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if counts == nil {
		counts = []domain.ParticipantCount{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, counts)
}

// DeleteJoin handles DELETE /joinCamp/{id}. Admin only.
func (h *JoinHandler) DeleteJoin(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.joinStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete join record")
		return
	}
	if deleted == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, DeleteResponse{
			Success: false,
			Message: "Camp not found",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:      true,
		DeletedCount: deleted,
	})
}

// DeleteJoinData handles DELETE /CampData/{id}, the legacy deletion
// route that carries no auth guard in the deployed contract.
func (h *JoinHandler) DeleteJoinData(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deleted, err := h.joinStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete join record")
		return
	}
	if deleted == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Camp not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Success:      true,
		DeletedCount: deleted,
	})
}
