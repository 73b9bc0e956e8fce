// FilePath: internal/repository/mongodb/mongodb.devices.go
package mongodb

import (
	"context"
	"fmt"

	"github.com/beehively/hub/internal/database"
	"github.com/beehively/hub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeviceRepo implements repository.DeviceRepository on the document store
type DeviceRepo struct {
	col *mongo.Collection
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(store *database.Store) *DeviceRepo {
	return &DeviceRepo{col: store.Collection(database.CollectionDevices)}
}

// ListAll streams every registered device row
func (r *DeviceRepo) ListAll(ctx context.Context) ([]models.Device, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	var devices []models.Device
	if err := cursor.All(ctx, &devices); err != nil {
		return nil, fmt.Errorf("decoding devices: %w", err)
	}
	return devices, nil
}
