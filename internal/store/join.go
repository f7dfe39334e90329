package store

import (
	"context"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// JoinStore defines the interface for camp registration persistence.
type JoinStore interface {
	// List returns all join records.
	List(ctx context.Context) ([]domain.JoinRecord, error)

	// ListByEmail returns the join records for the given participant email.
	ListByEmail(ctx context.Context, email string) ([]domain.JoinRecord, error)

	// FindByCampAndEmail retrieves the join record for the natural key
	// (campName, email). Returns ErrJoinRecordNotFound if none exists.
	FindByCampAndEmail(ctx context.Context, campName, email string) (*domain.JoinRecord, error)

	// Create inserts a new join record and returns its generated hex ID.
	// Returns ErrAlreadyJoined if a record for the same (campName, email)
	// pair already exists.
	Create(ctx context.Context, rec *domain.JoinRecord) (string, error)

	// Delete removes a join record by hex ID and returns the number of
	// deleted documents (zero when absent).
	Delete(ctx context.Context, id string) (int64, error)

	// CountByCamp groups join records by campName and counts them.
	CountByCamp(ctx context.Context) ([]domain.ParticipantCount, error)
}
