package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emmdra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "emmdra-cart", cfg.Storage.Key)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: file
  path: /tmp/emmdra
log:
  level: debug
orders:
  path: /tmp/orders.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/emmdra", cfg.Storage.Path)
	assert.Equal(t, "emmdra-cart", cfg.Storage.Key)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/orders.db", cfg.Orders.Path)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: file\n  path: /tmp/a\n")
	t.Setenv("EMMDRA_CART_BACKEND", "memory")
	t.Setenv("EMMDRA_CART_KEY", "guest-cart")
	t.Setenv("EMMDRA_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "guest-cart", cfg.Storage.Key)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "storage: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "redis"
	assert.ErrorContains(t, cfg.Validate(), "unknown storage backend")

	cfg = Default()
	cfg.Storage.Path = ""
	assert.ErrorContains(t, cfg.Validate(), "storage.path")

	cfg = Default()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
