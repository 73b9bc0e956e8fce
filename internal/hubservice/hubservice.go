// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"sync"
	"time"

	"github.com/beehively/hub/internal/apiary"
	"github.com/beehively/hub/internal/auth"
	"github.com/beehively/hub/internal/errors"
	"github.com/beehively/hub/internal/firmware"
	"github.com/beehively/hub/internal/repository"
)

// HubService owns the shared state every request handler works against:
// the immutable auth cache and apiary registry, the store repositories,
// the firmware store, and the in-memory last-ping table.
//
// The mutex guards lastPing only. Auth and Apiaries never change after
// startup and are read lock-free; store I/O always happens outside the
// lock so one slow store call cannot serialize the service.
type HubService struct {
	Auth     *auth.Cache
	Apiaries *apiary.Registry
	Readings repository.ReadingRepository
	Pings    repository.PingRepository
	Firmware *firmware.Store

	mu       sync.RWMutex
	lastPing map[string]time.Time
}

// New creates a new HubService instance
func New(
	cache *auth.Cache,
	registry *apiary.Registry,
	readings repository.ReadingRepository,
	pings repository.PingRepository,
	fw *firmware.Store,
) *HubService {
	return &HubService{
		Auth:     cache,
		Apiaries: registry,
		Readings: readings,
		Pings:    pings,
		Firmware: fw,
		lastPing: make(map[string]time.Time),
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Auth == nil {
		return ErrMissingDependency("auth cache")
	}
	if s.Apiaries == nil {
		return ErrMissingDependency("apiary registry")
	}
	if s.Readings == nil {
		return ErrMissingDependency("reading repository")
	}
	if s.Pings == nil {
		return ErrMissingDependency("ping repository")
	}
	if s.Firmware == nil {
		return ErrMissingDependency("firmware store")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}
