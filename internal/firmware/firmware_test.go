// FilePath: internal/firmware/firmware_test.go
package firmware

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/beehively/hub/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	base := t.TempDir()
	store, err := NewStore(base)
	require.NoError(t, err)
	return store, base
}

func writeArtifact(t *testing.T, base string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{base}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0644))
}

func TestOpenPicksGreatestCandidate(t *testing.T) {
	store, base := newTestStore(t)
	writeArtifact(t, base, "serial-1", "v2", "fw-001.bin")
	writeArtifact(t, base, "serial-1", "v2", "fw-003.bin")
	writeArtifact(t, base, "serial-1", "v2", "fw-002.bin")

	rc, err := store.Open("serial-1", "v2")
	require.NoError(t, err)
	defer rc.Close()

	contents, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "fw-003.bin", string(contents), "lexicographically greatest entry wins")
}

func TestOpenSkipsSubdirectories(t *testing.T) {
	store, base := newTestStore(t)
	writeArtifact(t, base, "serial-1", "v2", "zzz", "nested.bin")
	writeArtifact(t, base, "serial-1", "v2", "fw.bin")

	rc, err := store.Open("serial-1", "v2")
	require.NoError(t, err)
	defer rc.Close()

	contents, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "fw.bin", string(contents))
}

func TestOpenMissingAddress(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Open("serial-1", "v9")
	require.Error(t, err)
	apiErr := errors.AsAPIError(err)
	assert.Equal(t, errors.ErrorTypeInternal, apiErr.Type, "unlistable address is an internal failure")
}

func TestOpenEmptyListing(t *testing.T) {
	store, base := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "serial-1", "v2"), 0755))

	_, err := store.Open("serial-1", "v2")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "empty listing is a resolution failure, not an internal one")
}

func TestGatewayInfoAndBinary(t *testing.T) {
	store, base := newTestStore(t)
	writeArtifact(t, base, "meadow", "gw-1.data")
	writeArtifact(t, base, "meadow", "gw-1.bin")

	info, err := store.GatewayInfo("meadow", "gw-1")
	require.NoError(t, err)
	assert.Equal(t, "gw-1.data", info)

	bin, err := store.GatewayBinary("meadow", "gw-1")
	require.NoError(t, err)
	assert.Equal(t, "gw-1.bin", string(bin))

	_, err = store.GatewayInfo("meadow", "gw-9")
	assert.True(t, errors.IsNotFound(err))

	_, err = store.GatewayBinary("orchard", "gw-1")
	assert.True(t, errors.IsNotFound(err))
}
