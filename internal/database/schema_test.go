// FilePath: internal/database/schema_test.go
package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCreator struct {
	created    []string
	timeseries map[string]bool
	failOn     string
}

func (f *fakeCreator) CreateCollection(ctx context.Context, name string, opts ...*options.CreateCollectionOptions) error {
	if name == f.failOn {
		return errors.New("create failed")
	}
	f.created = append(f.created, name)
	if f.timeseries == nil {
		f.timeseries = make(map[string]bool)
	}
	for _, opt := range opts {
		if opt != nil && opt.TimeSeriesOptions != nil {
			f.timeseries[name] = true
		}
	}
	return nil
}

func TestEnsureSchemaCreatesMissingCollections(t *testing.T) {
	fake := &fakeCreator{}
	bridges := []string{"bridge-a", "bridge-b"}

	err := EnsureSchema(context.Background(), fake, nil, bridges)
	require.NoError(t, err)

	assert.Equal(t, []string{
		CollectionPings, CollectionReadings, CollectionDevices, "bridge-a", "bridge-b",
	}, fake.created)

	assert.True(t, fake.timeseries[CollectionPings])
	assert.True(t, fake.timeseries[CollectionReadings])
	assert.False(t, fake.timeseries[CollectionDevices], "devices is a plain collection")
	assert.False(t, fake.timeseries["bridge-a"], "bridge collections are plain")
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	first := &fakeCreator{}
	bridges := []string{"bridge-a"}

	require.NoError(t, EnsureSchema(context.Background(), first, nil, bridges))

	// Second run with the first run's result reported as existing must not
	// issue a single creation call.
	second := &fakeCreator{}
	require.NoError(t, EnsureSchema(context.Background(), second, first.created, bridges))
	assert.Empty(t, second.created)
}

func TestEnsureSchemaPartialExisting(t *testing.T) {
	fake := &fakeCreator{}
	existing := []string{CollectionPings, CollectionDevices}

	require.NoError(t, EnsureSchema(context.Background(), fake, existing, []string{"bridge-a"}))
	assert.Equal(t, []string{CollectionReadings, "bridge-a"}, fake.created)
}

func TestEnsureSchemaCreateFailureIsFatal(t *testing.T) {
	fake := &fakeCreator{failOn: CollectionReadings}

	err := EnsureSchema(context.Background(), fake, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), CollectionReadings)
}
