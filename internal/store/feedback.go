package store

import (
	"context"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// FeedbackStore defines the interface for feedback persistence.
type FeedbackStore interface {
	// List returns all feedback documents.
	List(ctx context.Context) ([]domain.Feedback, error)

	// ListByEmailAndCamp returns the feedback matching the given email
	// and camp ID.
	ListByEmailAndCamp(ctx context.Context, email, campID string) ([]domain.Feedback, error)

	// FindByCampAndEmail retrieves the feedback for the natural key
	// (campId, email). Returns ErrNotFound if none exists.
	FindByCampAndEmail(ctx context.Context, campID, email string) (*domain.Feedback, error)

	// Create inserts new feedback and returns its generated hex ID.
	// Returns ErrFeedbackExists if feedback for the same (campId, email)
	// pair already exists.
	Create(ctx context.Context, fb *domain.Feedback) (string, error)
}
