package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medcamp/medcamp-api/internal/domain"
	"github.com/medcamp/medcamp-api/internal/store"
)

// MongoJoinStore implements the store.JoinStore interface using the
// joinCamp collection as the storage backend.
type MongoJoinStore struct {
	coll *mongo.Collection
}

// NewJoinStore creates a MongoDB implementation of the JoinStore interface.
func NewJoinStore(db *mongo.Database) *MongoJoinStore {
	return &MongoJoinStore{coll: db.Collection(joinsCollection)}
}

// Ensure MongoJoinStore implements store.JoinStore interface
var _ store.JoinStore = (*MongoJoinStore)(nil)

// List implements store.JoinStore.List
func (s *MongoJoinStore) List(ctx context.Context) ([]domain.JoinRecord, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list join records: %w", err)
	}

	var recs []domain.JoinRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode join records: %w", err)
	}
	return recs, nil
}

// ListByEmail implements store.JoinStore.ListByEmail
func (s *MongoJoinStore) ListByEmail(ctx context.Context, email string) ([]domain.JoinRecord, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list join records for %s: %w", email, err)
	}

	var recs []domain.JoinRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode join records: %w", err)
	}
	return recs, nil
}

// FindByCampAndEmail implements store.JoinStore.FindByCampAndEmail
func (s *MongoJoinStore) FindByCampAndEmail(ctx context.Context, campName, email string) (*domain.JoinRecord, error) {
	var rec domain.JoinRecord
	err := s.coll.FindOne(ctx, bson.M{"campName": campName, "email": email}).Decode(&rec)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrJoinRecordNotFound
		}
		return nil, fmt.Errorf("failed to find join record: %w", err)
	}
	return &rec, nil
}

// Create implements store.JoinStore.Create. The unique index on
// (campName, email) turns a racing duplicate insert into ErrAlreadyJoined.
func (s *MongoJoinStore) Create(ctx context.Context, rec *domain.JoinRecord) (string, error) {
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		if isDuplicateKey(err) {
			return "", store.ErrAlreadyJoined
		}
		return "", fmt.Errorf("failed to insert join record: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Delete implements store.JoinStore.Delete
func (s *MongoJoinStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete join record %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// CountByCamp implements store.JoinStore.CountByCamp
func (s *MongoJoinStore) CountByCamp(ctx context.Context) ([]domain.ParticipantCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$campName"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count participants: %w", err)
	}

	var counts []domain.ParticipantCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode participant counts: %w", err)
	}
	return counts, nil
}
