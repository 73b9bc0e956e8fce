// FilePath: internal/repository/mongodb/mongodb.readings.go
package mongodb

import (
	"context"
	"fmt"

	"github.com/beehively/hub/internal/database"
	"github.com/beehively/hub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultQueryLimit = 1000

// ReadingRepo implements repository.ReadingRepository on the document store
type ReadingRepo struct {
	readings *mongo.Collection
	db       *mongo.Database
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(store *database.Store) *ReadingRepo {
	return &ReadingRepo{
		readings: store.Collection(database.CollectionReadings),
		db:       store.Database(),
	}
}

// InsertReading appends one decoded reading row. Every row is an
// independent insert; ordering and atomicity across rows is the caller's
// concern.
func (r *ReadingRepo) InsertReading(ctx context.Context, reading *models.PersistedReading) error {
	if _, err := r.readings.InsertOne(ctx, reading); err != nil {
		return fmt.Errorf("inserting reading for %s: %w", reading.SerialNumber, err)
	}
	return nil
}

// InsertMonitorReport appends a legacy monitor report into the per-bridge
// collection named by the bridge id.
func (r *ReadingRepo) InsertMonitorReport(ctx context.Context, bridgeID string, report *models.StoredMonitorReport) error {
	if _, err := r.db.Collection(bridgeID).InsertOne(ctx, report); err != nil {
		return fmt.Errorf("inserting monitor report for %s: %w", bridgeID, err)
	}
	return nil
}

// QueryReadings returns persisted readings for one device, oldest first,
// optionally bounded by the query's time range and limit.
func (r *ReadingRepo) QueryReadings(ctx context.Context, serialNumber string, q models.ReadingQuery) ([]models.PersistedReading, error) {
	filter := bson.M{"serial_number": serialNumber}

	window := bson.M{}
	if !q.Start.IsZero() {
		window["$gte"] = q.Start
	}
	if !q.End.IsZero() {
		window["$lte"] = q.End
	}
	if len(window) > 0 {
		filter["timestamp"] = window
	}

	limit := q.Limit
	if limit <= 0 || limit > defaultQueryLimit {
		limit = defaultQueryLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.readings.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("querying readings for %s: %w", serialNumber, err)
	}

	var readings []models.PersistedReading
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decoding readings for %s: %w", serialNumber, err)
	}
	return readings, nil
}
