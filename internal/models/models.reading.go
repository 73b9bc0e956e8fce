// FilePath: internal/models/models.reading.go
package models

import "time"

// RawSensorReading is a single measurement as it arrives on the wire.
// Class packs the measurement family and a sub-index into one byte; the
// sensorcodec package turns it into a name.
type RawSensorReading struct {
	Class uint8   `json:"class"`
	Value float64 `json:"value"`
}

// ReadingBatch is one upload unit from a sensor bridge. The timestamp is
// batch-level and shared by every reading in Values.
type ReadingBatch struct {
	ID        uint8              `json:"id"`
	Timestamp int64              `json:"timestamp"` // epoch millis
	Values    []RawSensorReading `json:"values"`
}

// PersistedReading is the stored shape, one row per raw reading.
type PersistedReading struct {
	SerialNumber string    `json:"serial_number" bson:"serial_number"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	SensorName   string    `json:"sensor_name" bson:"sensor_name"`
	Value        float64   `json:"value" bson:"value"`
}

// ReadingQuery holds the time-range filter for the readings query endpoint.
type ReadingQuery struct {
	Start time.Time `schema:"start"`
	End   time.Time `schema:"end"`
	Limit int64     `schema:"limit"`
}
