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

// MongoCampStore implements the store.CampStore interface using the
// camp collection as the storage backend.
type MongoCampStore struct {
	coll *mongo.Collection
}

// NewCampStore creates a MongoDB implementation of the CampStore
// interface. The database handle is initialized and managed by the caller.
func NewCampStore(db *mongo.Database) *MongoCampStore {
	return &MongoCampStore{coll: db.Collection(campsCollection)}
}

// Ensure MongoCampStore implements store.CampStore interface
var _ store.CampStore = (*MongoCampStore)(nil)

// List implements store.CampStore.List
func (s *MongoCampStore) List(ctx context.Context) ([]domain.Camp, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}

	var camps []domain.Camp
	if err := cursor.All(ctx, &camps); err != nil {
		return nil, fmt.Errorf("failed to decode camps: %w", err)
	}
	return camps, nil
}

// GetByID implements store.CampStore.GetByID
func (s *MongoCampStore) GetByID(ctx context.Context, id string) (*domain.Camp, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var camp domain.Camp
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&camp)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrCampNotFound
		}
		return nil, fmt.Errorf("failed to get camp %s: %w", id, err)
	}
	return &camp, nil
}

// Create implements store.CampStore.Create
func (s *MongoCampStore) Create(ctx context.Context, camp *domain.Camp) (string, error) {
	res, err := s.coll.InsertOne(ctx, camp)
	if err != nil {
		return "", fmt.Errorf("failed to insert camp: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update implements store.CampStore.Update
func (s *MongoCampStore) Update(ctx context.Context, id string, update domain.CampUpdate) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		return 0, fmt.Errorf("failed to update camp %s: %w", id, err)
	}
	return res.MatchedCount, nil
}
