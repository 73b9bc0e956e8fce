// FilePath: internal/auth/cache.go

// Package auth maps opaque device tokens to serial numbers. The cache is
// built once at process start from the devices collection and never mutated
// afterwards, so lookups need no lock. Revoking a device requires a process
// restart; that is a documented limitation of the deployment model, not an
// oversight.
package auth

import (
	"context"
	"fmt"

	"github.com/beehively/hub/internal/repository"
	"github.com/google/uuid"
	nuts "github.com/vaudience/go-nuts"
)

// Cache answers token validity and serial-number lookups in O(1)
type Cache struct {
	tokens map[uuid.UUID]uuid.UUID
}

// BuildCache streams all registered devices and indexes them by token.
// Any row with an unparseable token or serial number aborts construction:
// serving traffic with a partially valid cache is worse than not starting.
func BuildCache(ctx context.Context, devices repository.DeviceRepository) (*Cache, error) {
	rows, err := devices.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading device registrations: %w", err)
	}

	tokens := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, row := range rows {
		token, err := uuid.Parse(row.AuthToken)
		if err != nil {
			return nil, fmt.Errorf("device %q has malformed auth token: %w", row.SerialNumber, err)
		}
		serial, err := uuid.Parse(row.SerialNumber)
		if err != nil {
			return nil, fmt.Errorf("device token %s has malformed serial number: %w", token, err)
		}
		tokens[token] = serial
	}

	nuts.L.Infof("[AuthCache] Loaded %d devices", len(tokens))
	return &Cache{tokens: tokens}, nil
}

// IsValid reports whether the token belongs to a registered device.
// Unparseable tokens are simply invalid.
func (c *Cache) IsValid(token string) bool {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return false
	}
	_, ok := c.tokens[parsed]
	return ok
}

// Resolve returns the serial number registered for the token. Absence is
// not an error; callers branch on the second return value.
func (c *Cache) Resolve(token string) (string, bool) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return "", false
	}
	serial, ok := c.tokens[parsed]
	if !ok {
		return "", false
	}
	return serial.String(), true
}

// Size returns the number of cached device registrations
func (c *Cache) Size() int {
	return len(c.tokens)
}
