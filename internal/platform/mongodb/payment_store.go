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

// MongoPaymentStore implements the store.PaymentStore interface using
// the payments collection as the storage backend.
type MongoPaymentStore struct {
	coll *mongo.Collection
}

// NewPaymentStore creates a MongoDB implementation of the PaymentStore interface.
func NewPaymentStore(db *mongo.Database) *MongoPaymentStore {
	return &MongoPaymentStore{coll: db.Collection(paymentsCollection)}
}

// Ensure MongoPaymentStore implements store.PaymentStore interface
var _ store.PaymentStore = (*MongoPaymentStore)(nil)

// List implements store.PaymentStore.List
func (s *MongoPaymentStore) List(ctx context.Context) ([]domain.Payment, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// ListByEmail implements store.PaymentStore.ListByEmail
func (s *MongoPaymentStore) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for %s: %w", email, err)
	}

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// Create implements store.PaymentStore.Create
func (s *MongoPaymentStore) Create(ctx context.Context, payment *domain.Payment) (string, error) {
	res, err := s.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("failed to insert payment: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Confirm implements store.PaymentStore.Confirm. The transition is
// one-way: a payment is only ever set to Confirmed, never back.
func (s *MongoPaymentStore) Confirm(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	update := bson.M{"$set": bson.M{"status": domain.PaymentConfirmed}}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm payment %s: %w", id, err)
	}
	return res.MatchedCount, nil
}
