// FilePath: internal/firmware/firmware.go

// Package firmware resolves firmware artifacts for devices requesting
// updates. Artifacts live on the local filesystem: the token-based path
// addresses {base}/{serial}/{version}/ holding candidate binaries, and the
// legacy layout exposes {base}/{facility}/{gateway}.bin plus a sibling
// .data metadata file.
package firmware

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/beehively/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

const defaultPermissions = 0755

// Store serves firmware artifacts from a base directory
type Store struct {
	basePath string
}

// NewStore creates a firmware store rooted at basePath
func NewStore(basePath string) (*Store, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, defaultPermissions); err != nil {
			return nil, errors.NewInternalError("failed to create firmware directory", err)
		}
	}
	return &Store{basePath: basePath}, nil
}

// Open returns a reader over the firmware binary for the device and version.
// When the address holds more than one candidate, the lexicographically
// greatest entry wins, which makes the pick stable across filesystems and
// favors the newest tag for zero-padded or date-stamped names.
func (s *Store) Open(serialNumber, version string) (io.ReadCloser, error) {
	dir := filepath.Join(s.basePath, serialNumber, version)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewInternalError("failed to list firmware address", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, errors.NewNotFoundError("no firmware published for device", nil)
	}
	sort.Strings(names)
	name := names[len(names)-1]

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.NewInternalError("failed to open firmware binary", err)
	}

	nuts.L.Infof("[Firmware] Serving %s/%s/%s", serialNumber, version, name)
	return f, nil
}

// GatewayInfo returns the legacy metadata sidecar for a facility gateway
func (s *Store) GatewayInfo(facility, gatewayID string) (string, error) {
	path := filepath.Join(s.basePath, facility, gatewayID+".data")

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFoundError("no firmware metadata for gateway", nil)
		}
		return "", errors.NewInternalError("failed to read firmware metadata", err)
	}
	return string(contents), nil
}

// GatewayBinary returns the legacy firmware binary for a facility gateway
func (s *Store) GatewayBinary(facility, gatewayID string) ([]byte, error) {
	path := filepath.Join(s.basePath, facility, gatewayID+".bin")

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("no firmware binary for gateway", nil)
		}
		return nil, errors.NewInternalError("failed to read firmware binary", err)
	}
	return contents, nil
}
