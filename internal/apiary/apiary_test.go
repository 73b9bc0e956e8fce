// FilePath: internal/apiary/apiary_test.go
package apiary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(map[string]*Apiary{
		"meadow": {
			Name: "meadow",
			Gateways: map[string][]string{
				"gw-1": {"bridge-a", "bridge-b"},
				"gw-2": {"bridge-c"},
			},
		},
		"orchard": {
			Name:     "orchard",
			Gateways: map[string][]string{"gw-9": nil},
		},
	})
}

func TestRegistryMembership(t *testing.T) {
	r := testRegistry()

	assert.True(t, r.Known("meadow"))
	assert.False(t, r.Known("tundra"))

	assert.True(t, r.HasGateway("meadow", "gw-1"))
	assert.False(t, r.HasGateway("meadow", "gw-9"))
	assert.False(t, r.HasGateway("tundra", "gw-1"), "absent facility yields false")

	assert.True(t, r.HasBridge("meadow", "bridge-a"))
	assert.True(t, r.HasBridge("meadow", "bridge-c"))
	assert.False(t, r.HasBridge("meadow", "bridge-z"))
	assert.False(t, r.HasBridge("orchard", "bridge-a"), "bridges are scoped per facility")
	assert.False(t, r.HasBridge("tundra", "bridge-a"), "absent facility yields false")
}

func TestRegistryBridgeLists(t *testing.T) {
	r := testRegistry()

	assert.ElementsMatch(t, []string{"bridge-a", "bridge-b", "bridge-c"}, r.AllBridges("meadow"))
	assert.Empty(t, r.AllBridges("orchard"))
	assert.Nil(t, r.AllBridges("tundra"))
	assert.ElementsMatch(t, []string{"bridge-a", "bridge-b", "bridge-c"}, r.EveryBridge())
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.conf")
	doc := `{
		"meadow": {"name": "meadow", "gateways": {"gw-1": ["bridge-a"]}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	r, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.True(t, r.HasBridge("meadow", "bridge-a"))
}

func TestLoadRegistryErrors(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "data.conf")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err = LoadRegistry(path)
	assert.Error(t, err)
}
