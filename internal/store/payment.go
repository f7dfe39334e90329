package store

import (
	"context"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// PaymentStore defines the interface for payment record persistence.
type PaymentStore interface {
	// List returns all payment documents.
	List(ctx context.Context) ([]domain.Payment, error)

	// ListByEmail returns the payments recorded for the given email.
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)

	// Create inserts a new payment record and returns its generated hex ID.
	Create(ctx context.Context, payment *domain.Payment) (string, error)

	// Confirm transitions the payment with the given hex ID to the
	// Confirmed status. Returns the number of matched documents.
	Confirm(ctx context.Context, id string) (int64, error)
}
