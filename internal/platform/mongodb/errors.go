package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medcamp/medcamp-api/internal/domain"
)

// parseObjectID converts a hex string to an ObjectID, mapping parse
// failures to the domain's invalid-ID error so the API layer surfaces
// them as client errors rather than server faults.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

// isNoDocuments reports whether the error is the driver's empty-result
// sentinel from FindOne.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// isDuplicateKey reports whether the error is a unique-index violation,
// i.e. a racing insert lost to an existing natural key.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
