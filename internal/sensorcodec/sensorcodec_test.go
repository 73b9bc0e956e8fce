// FilePath: internal/sensorcodec/sensorcodec_test.go
package sensorcodec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKnownClasses(t *testing.T) {
	tests := []struct {
		class byte
		want  string
	}{
		{0x00, "TEMPERATURE"},
		{0x01, "TEMPERATURE_1"},
		{0x02, "TEMPERATURE_2"},
		{0x03, "TEMPERATURE_3"},
		{0x04, "HUMIDITY"},
		{0x05, "HUMIDITY_1"},
		{0x08, "SOUND"},
		{0x0C, "CO2"},
		{0x0F, "CO2_3"},
		{0x10, "WEIGHT"},
		{0x13, "WEIGHT_3"}, // family index 4 hits the catch-all
		{0xFF, "WEIGHT_3"}, // highest possible class is still the catch-all
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("0x%02X", tt.class), func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.class))
		})
	}
}

// TestDecodeFullRange walks every possible class byte and rebuilds the
// expected name from the encoding rule: top six bits pick the family (>= 4
// is WEIGHT), bottom two bits pick the sub-index suffix.
func TestDecodeFullRange(t *testing.T) {
	names := map[byte]string{0: "TEMPERATURE", 1: "HUMIDITY", 2: "SOUND", 3: "CO2"}

	for class := 0; class <= 0xFF; class++ {
		b := byte(class)

		family, ok := names[b>>2]
		if !ok {
			family = "WEIGHT"
		}
		want := family
		if sub := b & 0x03; sub != 0 {
			want = fmt.Sprintf("%s_%d", family, sub)
		}

		assert.Equal(t, want, Decode(b), "class 0x%02X", b)
		// Decoding is pure: a second call yields the same name.
		assert.Equal(t, Decode(b), Decode(b))
	}
}
