package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/medcamp/medcamp-api/internal/api/shared"
	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/service/payments"
	"github.com/medcamp/medcamp-api/internal/store"
)

// PaymentHandler handles payment intent creation and payment records.
type PaymentHandler struct {
	paymentStore store.PaymentStore
	intents      payments.IntentCreator
}

// NewPaymentHandler creates a new PaymentHandler with the given dependencies.
func NewPaymentHandler(paymentStore store.PaymentStore, intents payments.IntentCreator) *PaymentHandler {
	return &PaymentHandler{
		paymentStore: paymentStore,
		intents:      intents,
	}
}

// CreateIntent handles POST /create-payment-intent. The decimal price is
// converted to an integer amount in cents before it reaches the provider.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentIntentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amount := payments.AmountCents(req.Price)

	clientSecret, err := h.intents.CreateIntent(r.Context(), amount)
	if err != nil {
		slog.Error("failed to create payment intent", "error", err, "amount_cents", amount)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatePaymentIntentResponse{
		ClientSecret: clientSecret,
	})
}

// ListPaymentsByEmail handles GET /payments/{email}. Token required.
func (h *PaymentHandler) ListPaymentsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	pays, err := h.paymentStore.ListByEmail(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if pays == nil {
		pays = []domain.Payment{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pays)
}

// ListPayments handles GET /payments/. Admin only.
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	pays, err := h.paymentStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if pays == nil {
		pays = []domain.Payment{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pays)
}

// RecordPayment handles POST /payments. Token required. New records
// start Pending; only an admin confirmation moves them forward.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	payment := &domain.Payment{
		Email:         req.Email,
		Amount:        req.Amount,
		CampName:      req.CampName,
		TransactionID: req.TransactionID,
		Status:        domain.PaymentPending,
		Date:          time.Now().UTC(),
	}

	id, err := h.paymentStore.Create(r.Context(), payment)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record payment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecordPaymentResponse{
		PaymentResult: InsertResponse{InsertedID: &id},
	})
}

// ConfirmPayment handles PATCH /payments/{id}. Admin only. The status
// transition is one-way: Pending to Confirmed, never reversed.
func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	matched, err := h.paymentStore.Confirm(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to confirm payment")
		return
	}
	if matched == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Payment not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UpdateResponse{MatchedCount: matched})
}
