//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_InstallUUIDPersistence(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	c, err := NewOrExisting(path)
	require.NoError(t, err)

	// Generated on creation and written to disk immediately.
	require.NotEmpty(t, c.Data.InstallUUID)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(b, &raw))
	require.Equal(t, c.Data.InstallUUID, raw["install_uuid"])

	// Re-open and ensure the same identity comes back.
	c2, err := NewOrExisting(path)
	require.NoError(t, err)
	require.Equal(t, c.Data.InstallUUID, c2.Data.InstallUUID)
}

func TestConfig_DefaultSecondsPersistence(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	c, err := NewOrExisting(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSeconds, c.Default(), "built-in default before anything is set")

	c.Data.DefaultSeconds = 300
	require.NoError(t, c.Save())

	c2, err := NewOrExisting(path)
	require.NoError(t, err)
	assert.Equal(t, 300, c2.Data.DefaultSeconds)
	assert.Equal(t, 300, c2.Default())
}

func TestConfig_LoadHealsInvalidValues(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")

	content := "default_seconds: -5\ninstall_uuid: not-a-uuid\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := New(path)
	require.NoError(t, err)
	assert.Zero(t, c.Data.DefaultSeconds, "negative default cleared")
	assert.NotEqual(t, "not-a-uuid", c.Data.InstallUUID, "invalid uuid regenerated")
	assert.NotEmpty(t, c.Data.InstallUUID)
	assert.Equal(t, DefaultSeconds, c.Default())

	// Healing is persisted, not just in-memory.
	c2, err := New(path)
	require.NoError(t, err)
	assert.Zero(t, c2.Data.DefaultSeconds)
	assert.Equal(t, c.Data.InstallUUID, c2.Data.InstallUUID)
}

func TestConfig_MissingFileIsNotAnError(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "missing", "config.yaml")

	c, err := New(path)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Data.InstallUUID)

	// New alone does not create the file; NewOrExisting does.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandTilde("~/.config/tock/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "tock", "config.yaml"), got)

	got, err = expandTilde("/absolute/path.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/path.yaml", got)
}
