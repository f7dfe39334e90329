package api

import (
	"errors"
	"net/http"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/store"
)

// CampHandler handles camp listing and administration requests.
type CampHandler struct {
	campStore store.CampStore
}

// NewCampHandler creates a new CampHandler with the given dependencies.
func NewCampHandler(campStore store.CampStore) *CampHandler {
	return &CampHandler{campStore: campStore}
}

// ListCamps handles GET /camps.
func (h *CampHandler) ListCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.campStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if camps == nil {
		camps = []domain.Camp{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, camps)
}

// GetCamp handles GET /camps/{id}. A missing camp is an empty result,
// not an error, matching the clients built against this endpoint.
func (h *CampHandler) GetCamp(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	camp, err := h.campStore.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCampNotFound) {
			shared.RespondWithJSON(w, r, http.StatusOK, nil)
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, camp)
}

// CreateCamp handles POST /camps. Admin only.
func (h *CampHandler) CreateCamp(w http.ResponseWriter, r *http.Request) {
	var req CreateCampRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	camp := &domain.Camp{
		Name:                   req.Name,
		Fees:                   req.Fees,
		Location:               req.Location,
		DateTime:               req.DateTime,
		HealthcareProfessional: req.HealthcareProfessional,
		Description:            req.Description,
		Image:                  req.Image,
	}

	id, err := h.campStore.Create(r.Context(), camp)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create camp")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: &id})
}

// UpdateCamp handles PATCH /camps/{id}.
func (h *CampHandler) UpdateCamp(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateCampRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	matched, err := h.campStore.Update(r.Context(), id, domain.CampUpdate{
		Name:                   req.CampName,
		Fees:                   req.Fees,
		Location:               req.Location,
		DateTime:               req.DateTime,
		HealthcareProfessional: req.HealthcareProfessional,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update camp")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Camp not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{MatchedCount: matched})
}
