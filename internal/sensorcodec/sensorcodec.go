// FilePath: internal/sensorcodec/sensorcodec.go

// Package sensorcodec decodes the one-byte sensor class carried in reading
// uploads. The encoding is a wire contract shared with bridge firmware and
// must not change without a protocol version bump.
package sensorcodec

import "fmt"

// The top six bits of a class byte select the measurement family. Family
// indexes beyond this table all decode to the catch-all; firmware uses that
// range for weight cells, so out-of-range and WEIGHT are deliberately the
// same thing on this protocol version.
var families = [...]string{
	0x00: "TEMPERATURE",
	0x01: "HUMIDITY",
	0x02: "SOUND",
	0x03: "CO2",
}

const catchAllFamily = "WEIGHT"

// Decode maps a class byte to its measurement name. The bottom two bits are
// a sub-index within the family: sub-index 0 yields the bare family name,
// 1-3 yield "FAMILY_n". Pure function of the class byte alone.
func Decode(class byte) string {
	family := catchAllFamily
	if idx := int(class >> 2); idx < len(families) {
		family = families[idx]
	}

	sub := class & 0x03
	if sub == 0 {
		return family
	}
	return fmt.Sprintf("%s_%d", family, sub)
}
