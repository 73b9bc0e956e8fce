// FilePath: internal/repository/mongodb/mongodb.pings.go
package mongodb

import (
	"context"
	"fmt"

	"github.com/beehively/hub/internal/database"
	"github.com/beehively/hub/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// PingRepo implements repository.PingRepository on the document store
type PingRepo struct {
	col *mongo.Collection
}

// NewPingRepository creates a new ping repository
func NewPingRepository(store *database.Store) *PingRepo {
	return &PingRepo{col: store.Collection(database.CollectionPings)}
}

// AppendPing appends one gateway ping row to the pings time-series collection
func (r *PingRepo) AppendPing(ctx context.Context, ping *models.PingRecord) error {
	if _, err := r.col.InsertOne(ctx, ping); err != nil {
		return fmt.Errorf("appending ping for %s: %w", ping.SerialNumber, err)
	}
	return nil
}
