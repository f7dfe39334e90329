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

// MongoUserStore implements the store.UserStore interface using the
// user collection as the storage backend.
type MongoUserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a MongoDB implementation of the UserStore interface.
func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(usersCollection)}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// List implements store.UserStore.List
func (s *MongoUserStore) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if isNoDocuments(err) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// Create implements store.UserStore.Create. The unique index on email
// turns a racing duplicate insert into ErrEmailExists.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) (string, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if isDuplicateKey(err) {
			return "", store.ErrEmailExists
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Delete implements store.UserStore.Delete
func (s *MongoUserStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// SetRole implements store.UserStore.SetRole
func (s *MongoUserStore) SetRole(ctx context.Context, id, role string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, fmt.Errorf("failed to set role on user %s: %w", id, err)
	}
	return res.MatchedCount, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
func (s *MongoUserStore) UpdateProfile(ctx context.Context, matchEmail, name, newEmail string) (int64, error) {
	update := bson.M{"$set": bson.M{"name": name, "email": newEmail}}

	res, err := s.coll.UpdateOne(ctx, bson.M{"email": matchEmail}, update)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, store.ErrEmailExists
		}
		return 0, fmt.Errorf("failed to update profile for %s: %w", matchEmail, err)
	}
	return res.MatchedCount, nil
}
