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

// FeedbackHandler handles post-camp feedback requests.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
}

// NewFeedbackHandler creates a new FeedbackHandler with the given dependencies.
func NewFeedbackHandler(feedbackStore store.FeedbackStore) *FeedbackHandler {
	return &FeedbackHandler{feedbackStore: feedbackStore}
}

// SubmitFeedback handles POST /feedback. The (campId, email) natural
// key is checked before the insert, with the unique index closing the
// race against concurrent submissions.
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.feedbackStore.FindByCampAndEmail(r.Context(), req.CampID, req.Email)
	if err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Feedback already submitted for this camp.")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		HandleAPIError(w, r, err, "Failed to submit feedback.")
		return
	}

	fb := &domain.Feedback{
		CampID:    req.CampID,
		Email:     req.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	id, err := h.feedbackStore.Create(r.Context(), fb)
	if err != nil {
		if errors.Is(err, store.ErrFeedbackExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Feedback already submitted for this camp.")
			return
		}
		HandleAPIError(w, r, err, "Failed to submit feedback.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, InsertResponse{InsertedID: &id})
}

// ListFeedback handles GET /feedback.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	fbs, err := h.feedbackStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if fbs == nil {
		fbs = []domain.Feedback{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fbs)
}

// GetFeedback handles GET /feedback/{email}/{id}, returning the
// feedback the given participant left for the given camp.
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	campID := chi.URLParam(r, "id")

	fbs, err := h.feedbackStore.ListByEmailAndCamp(r.Context(), email, campID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if fbs == nil {
		fbs = []domain.Feedback{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, fbs)
}
