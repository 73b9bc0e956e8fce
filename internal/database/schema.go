// FilePath: internal/database/schema.go
package database

import (
	"context"
	"fmt"

	nuts "github.com/vaudience/go-nuts"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionCreator is the slice of the database handle that schema
// provisioning needs. *mongo.Database satisfies it.
type CollectionCreator interface {
	CreateCollection(ctx context.Context, name string, opts ...*options.CreateCollectionOptions) error
}

// EnsureSchema provisions every collection the hub needs, given the list of
// already-existing collection names. Each check is independent and skips
// collections that are already present, so running it on every process start
// is safe. Any creation failure is returned to the caller, which treats it
// as fatal: the service cannot run without its schema.
func EnsureSchema(ctx context.Context, db CollectionCreator, existing []string, bridges []string) error {
	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	// Readings and pings are time-series collections bucketed per minute,
	// keyed on the batch timestamp and grouped by device serial number.
	timeseries := options.TimeSeries().
		SetTimeField("timestamp").
		SetMetaField("serial_number").
		SetGranularity("minutes")

	for _, name := range []string{CollectionPings, CollectionReadings} {
		if have[name] {
			continue
		}
		opts := options.CreateCollection().SetTimeSeriesOptions(timeseries)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("creating time-series collection %s: %w", name, err)
		}
		nuts.L.Infof("[Schema] Created time-series collection %s", name)
	}

	if !have[CollectionDevices] {
		if err := db.CreateCollection(ctx, CollectionDevices); err != nil {
			return fmt.Errorf("creating collection %s: %w", CollectionDevices, err)
		}
		nuts.L.Infof("[Schema] Created collection %s", CollectionDevices)
	}

	// Legacy monitor reports land in one plain collection per bridge.
	for _, bridge := range bridges {
		if have[bridge] {
			continue
		}
		if err := db.CreateCollection(ctx, bridge); err != nil {
			return fmt.Errorf("creating bridge collection %s: %w", bridge, err)
		}
		nuts.L.Infof("[Schema] Created bridge collection %s", bridge)
	}

	return nil
}
