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

// MongoFeedbackStore implements the store.FeedbackStore interface using
// the feedbacks collection as the storage backend.
type MongoFeedbackStore struct {
	coll *mongo.Collection
}

// NewFeedbackStore creates a MongoDB implementation of the FeedbackStore interface.
func NewFeedbackStore(db *mongo.Database) *MongoFeedbackStore {
	return &MongoFeedbackStore{coll: db.Collection(feedbackCollection)}
}

// Ensure MongoFeedbackStore implements store.FeedbackStore interface
var _ store.FeedbackStore = (*MongoFeedbackStore)(nil)

// List implements store.FeedbackStore.List
func (s *MongoFeedbackStore) List(ctx context.Context) ([]domain.Feedback, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	var fbs []domain.Feedback
	if err := cursor.All(ctx, &fbs); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return fbs, nil
}

// ListByEmailAndCamp implements store.FeedbackStore.ListByEmailAndCamp
func (s *MongoFeedbackStore) ListByEmailAndCamp(ctx context.Context, email, campID string) ([]domain.Feedback, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"email": email, "campId": campID})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for %s: %w", email, err)
	}

	var fbs []domain.Feedback
	if err := cursor.All(ctx, &fbs); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return fbs, nil
}

// FindByCampAndEmail implements store.FeedbackStore.FindByCampAndEmail
func (s *MongoFeedbackStore) FindByCampAndEmail(ctx context.Context, campID, email string) (*domain.Feedback, error) {
	var fb domain.Feedback
	err := s.coll.FindOne(ctx, bson.M{"campId": campID, "email": email}).Decode(&fb)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find feedback: %w", err)
	}
	return &fb, nil
}

// Create implements store.FeedbackStore.Create. The unique index on
// (campId, email) turns a racing duplicate insert into ErrFeedbackExists.
func (s *MongoFeedbackStore) Create(ctx context.Context, fb *domain.Feedback) (string, error) {
	res, err := s.coll.InsertOne(ctx, fb)
	if err != nil {
		if isDuplicateKey(err) {
			return "", store.ErrFeedbackExists
		}
		return "", fmt.Errorf("failed to insert feedback: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}
