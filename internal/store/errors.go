package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist.
	// This is the generic version of the entity-specific not found errors.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when a write would violate a natural-key
	// invariant (e.g. a second join record for the same camp and email).
	ErrDuplicate = errors.New("document already exists")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCampNotFound indicates that the requested camp does not exist.
	ErrCampNotFound = fmt.Errorf("%w: camp", ErrNotFound)

	// ErrJoinRecordNotFound indicates that the requested join record does not exist.
	ErrJoinRecordNotFound = fmt.Errorf("%w: join record", ErrNotFound)

	// ErrPaymentNotFound indicates that the requested payment does not exist.
	ErrPaymentNotFound = fmt.Errorf("%w: payment", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrAlreadyJoined indicates a join record already exists for the
	// (campName, email) pair.
	ErrAlreadyJoined = fmt.Errorf("%w: join record", ErrDuplicate)

	// ErrFeedbackExists indicates feedback already exists for the
	// (campId, email) pair.
	ErrFeedbackExists = fmt.Errorf("%w: feedback", ErrDuplicate)

	// ErrEmailExists indicates a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
