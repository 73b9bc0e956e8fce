// FilePath: internal/hubservice/hubservice.ingest.go
package hubservice

import (
	"context"
	"time"

	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/models"
	"github.com/beehively/hub/internal/sensorcodec"
	nuts "github.com/vaudience/go-nuts"
)

// IngestDeviceReadings persists every reading of every batch, in input
// order, for the device identified by token. The caller has already
// authorized the token; each batch still re-resolves it so a batch whose
// resolution misses is skipped rather than failing the submission.
//
// Writes are independent per-reading inserts with no transaction: the
// first failed write aborts the remainder and surfaces a format failure,
// and rows written before the failure stay written. Submitters must treat
// a failure response as "partially applied".
func (s *HubService) IngestDeviceReadings(ctx context.Context, token string, batches []models.ReadingBatch) error {
	for _, batch := range batches {
		serial, ok := s.Auth.Resolve(token)
		if !ok {
			// Cannot happen while the cache invariant holds; the batch is
			// skipped instead of failing a submission that already passed
			// authorization.
			nuts.L.Warnf("[Ingest] Validated token failed to resolve, skipping batch %d", batch.ID)
			continue
		}

		timestamp := time.UnixMilli(batch.Timestamp).UTC()
		for _, raw := range batch.Values {
			reading := &models.PersistedReading{
				SerialNumber: serial,
				Timestamp:    timestamp,
				SensorName:   sensorcodec.Decode(raw.Class),
				Value:        raw.Value,
			}
			if err := s.Readings.InsertReading(ctx, reading); err != nil {
				nuts.L.Errorf("[Ingest] Write failed for %s (%s): %v", serial, reading.SensorName, err)
				return errors.NewFormatError("uploaded data could not be stored", err)
			}
		}
	}
	return nil
}

// IngestMonitorReport persists a legacy monitor report into the per-bridge
// collection, stamped with the server receive time.
func (s *HubService) IngestMonitorReport(ctx context.Context, bridgeID string, report *models.MonitorReport) error {
	stored := &models.StoredMonitorReport{
		Timestamp:     time.Now().UTC(),
		MonitorReport: *report,
	}
	if err := s.Readings.InsertMonitorReport(ctx, bridgeID, stored); err != nil {
		nuts.L.Errorf("[Ingest] Monitor report write failed for %s: %v", bridgeID, err)
		return errors.NewDatabaseError("failed to store monitor report", err)
	}
	return nil
}

// QueryReadings returns persisted readings for one device serial number
func (s *HubService) QueryReadings(ctx context.Context, serialNumber string, q models.ReadingQuery) ([]models.PersistedReading, error) {
	readings, err := s.Readings.QueryReadings(ctx, serialNumber, q)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query readings", err)
	}
	return readings, nil
}
