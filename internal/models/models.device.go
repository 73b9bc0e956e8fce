// FilePath: internal/models/models.device.go
package models

// Device is a pre-registered field device. Rows are provisioned out-of-band;
// the hub only ever reads them (once, at startup, to build the auth cache).
type Device struct {
	AuthToken    string `json:"auth_token" bson:"auth_token"`
	SerialNumber string `json:"serial_number" bson:"serial_number"`
}
