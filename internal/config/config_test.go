package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "1s", cfg.Billing.TickInterval)
	assert.Equal(t, "0000", cfg.UI.PIN)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
database:
  path: /tmp/test-games.db
redis:
  addr: redis.local:6380
ui:
  pin: "4321"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-games.db", cfg.Database.Path)
	assert.Equal(t, "redis.local:6380", cfg.Redis.Addr)
	assert.Equal(t, "4321", cfg.UI.PIN)
	// Untouched keys keep their defaults
	assert.Equal(t, "1s", cfg.Billing.TickInterval)
}

func TestLoad_MissingNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TMS_REDIS_ADDR", "override:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "override:6379", cfg.Redis.Addr)
}
