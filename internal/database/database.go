// FilePath: internal/database/database.go
package database

import (
	"context"
	"fmt"

	"github.com/beehively/hub/internal/config"
	nuts "github.com/vaudience/go-nuts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names the hub owns. Per-bridge collections are named by their
// bridge id and provisioned from the apiary registry.
const (
	CollectionDevices  = "devices"
	CollectionReadings = "sensor_readings"
	CollectionPings    = "gateway_pings"
)

// Store wraps the document database connection
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the document store connection and verifies it
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("error pinging document store: %w", err)
	}

	nuts.L.Infof("[Store] Connected to database %s", cfg.Database)
	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Database returns the underlying database handle
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Collection returns a handle to the named collection
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ListCollectionNames returns the names of all existing collections
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	return names, nil
}

// Close disconnects from the store
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
