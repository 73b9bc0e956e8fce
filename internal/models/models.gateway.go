// FilePath: internal/models/models.gateway.go
package models

import "time"

// MonitorReport is the legacy fixed-field report shape submitted by older
// bridge firmware on the facility/monitor path.
type MonitorReport struct {
	Battery    uint8  `json:"battery" bson:"battery"`         // battery %
	HiveTemp   int8   `json:"hive_temp" bson:"hive_temp"`     // celsius
	ExternTemp int8   `json:"extern_temp" bson:"extern_temp"` // celsius
	Humidity   uint8  `json:"humidity" bson:"humidity"`       // % relative humidity
	Pressure   uint16 `json:"pressure" bson:"pressure"`       // millibars
	Acoustics  uint16 `json:"acoustics" bson:"acoustics"`     // loudness value
}

// StoredMonitorReport adds the server-side receive time before persisting.
type StoredMonitorReport struct {
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	MonitorReport `bson:",inline"`
}

// PingRecord marks a gateway as seen at a point in time.
type PingRecord struct {
	SerialNumber string    `json:"serial_number" bson:"serial_number"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}
