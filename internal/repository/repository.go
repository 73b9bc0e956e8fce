// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"github.com/beehively/hub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
)

// DeviceRepository defines the interface for device registration reads.
// Devices are provisioned out-of-band; the hub only lists them to build
// its auth cache at startup.
type DeviceRepository interface {
	ListAll(ctx context.Context) ([]models.Device, error)
}

// ReadingRepository defines the interface for persisted telemetry
type ReadingRepository interface {
	InsertReading(ctx context.Context, reading *models.PersistedReading) error
	InsertMonitorReport(ctx context.Context, bridgeID string, report *models.StoredMonitorReport) error
	QueryReadings(ctx context.Context, serialNumber string, q models.ReadingQuery) ([]models.PersistedReading, error)
}

// PingRepository appends gateway ping records to the pings collection
type PingRepository interface {
	AppendPing(ctx context.Context, ping *models.PingRecord) error
}
