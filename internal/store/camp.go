package store

import (
	"context"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// CampStore defines the interface for camp persistence.
type CampStore interface {
	// List returns all camp documents.
	List(ctx context.Context) ([]domain.Camp, error)

	// GetByID retrieves a camp by its hex document ID.
	// Returns ErrCampNotFound if no camp matches.
	GetByID(ctx context.Context, id string) (*domain.Camp, error)

	// Create inserts a new camp and returns its generated hex ID.
	Create(ctx context.Context, camp *domain.Camp) (string, error)

	// Update applies a full field update to the camp with the given ID.
	// Returns the number of matched documents (zero when absent).
	Update(ctx context.Context, id string, update domain.CampUpdate) (int64, error)
}
