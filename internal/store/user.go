package store

import (
	"context"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// List returns all user documents.
	List(ctx context.Context) ([]domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserts a new user and returns its generated hex ID.
	// Returns ErrEmailExists if a user with the same email already exists.
	Create(ctx context.Context, user *domain.User) (string, error)

	// Delete removes a user by hex ID and returns the number of deleted
	// documents (zero when absent).
	Delete(ctx context.Context, id string) (int64, error)

	// SetRole sets the role of the user with the given hex ID. The
	// operation is idempotent: setting an already-held role is not an
	// error. Returns the number of matched documents.
	SetRole(ctx context.Context, id, role string) (int64, error)

	// UpdateProfile sets name and email on the user matching the given
	// email address. Returns the number of matched documents.
	UpdateProfile(ctx context.Context, matchEmail, name, newEmail string) (int64, error)
}
