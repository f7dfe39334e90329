// Package mongodb implements the store interfaces on top of a MongoDB
// database, one collection per entity.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medcamp/medcamp-api/internal/config"
	"github.com/medcamp/medcamp-api/internal/platform/logger"
)

// Collection names, matching the deployed database layout.
const (
	campsCollection    = "camp"
	joinsCollection    = "joinCamp"
	usersCollection    = "user"
	paymentsCollection = "payments"
	feedbackCollection = "feedbacks"
)

// Client owns the MongoDB connection for the process. It is opened once
// at startup, injected into the stores, and closed on shutdown.
type Client struct {
	mc *mongo.Client
	db *mongo.Database
}

// Connect opens and pings a MongoDB connection using the given configuration.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Client, error) {
	log := logger.FromContext(ctx)

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := mc.Ping(ctx, nil); err != nil {
		// Best-effort teardown of the half-open client.
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("connected to mongodb", "database", cfg.Name)

	return &Client{
		mc: mc,
		db: mc.Database(cfg.Name),
	}, nil
}

// Database returns the handle the stores are built on.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// EnsureIndexes creates the unique indexes backing the natural-key
// invariants: one user per email, one join record per (campName, email),
// one feedback per (campId, email). The pre-checks in the handlers keep
// the original error messages; these indexes close the race between
// check and insert.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		usersCollection: {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: unique,
		},
		joinsCollection: {
			Keys:    bson.D{{Key: "campName", Value: 1}, {Key: "email", Value: 1}},
			Options: unique,
		},
		feedbackCollection: {
			Keys:    bson.D{{Key: "campId", Value: 1}, {Key: "email", Value: 1}},
			Options: unique,
		},
	}

	for coll, model := range indexes {
		if _, err := c.db.Collection(coll).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll, err)
		}
	}

	return nil
}

// Disconnect closes the underlying MongoDB connection.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.mc.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}
