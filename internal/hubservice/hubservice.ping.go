// FilePath: internal/hubservice/hubservice.ping.go
package hubservice

import (
	"context"
	"time"

	"github.com/beehively/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RecordPing marks the gateway as seen now. The in-memory table is updated
// under the lock; the append to the pings collection happens after release.
// Pings are advisory, so a failed append is logged and not surfaced — the
// in-memory update already took effect.
func (s *HubService) RecordPing(ctx context.Context, gatewayID string) {
	now := time.Now().UTC()

	s.mu.Lock()
	s.lastPing[gatewayID] = now
	s.mu.Unlock()

	ping := &models.PingRecord{SerialNumber: gatewayID, Timestamp: now}
	if err := s.Pings.AppendPing(ctx, ping); err != nil {
		nuts.L.Warnf("[Ping] Failed to append ping for %s: %v", gatewayID, err)
	}
}

// LastPing returns the last recorded ping time for the gateway, or the
// epoch origin if it has never pinged this process.
func (s *HubService) LastPing(gatewayID string) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ts, ok := s.lastPing[gatewayID]; ok {
		return ts
	}
	return time.Unix(0, 0).UTC()
}
