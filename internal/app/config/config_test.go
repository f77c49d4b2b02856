package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"Contract-Service/internal/app/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_NAME", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, contract.DefaultPolicy(), cfg.Policy())
}

func TestNewConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	content := `
ServiceHost = "127.0.0.1"
ServicePort = 9090
LogJSON = true
PageCacheTTL = "30s"

[Contract]
OkCode = 0
OkMessage = "success"
ExposeSuccess = false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "service.toml"), []byte(content), 0o600))
	t.Chdir(dir)
	t.Setenv("CONFIG_NAME", "service")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "3")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 30*time.Second, cfg.PageCacheTTL)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, 3, cfg.RedisDB)

	policy := cfg.Policy()
	assert.Equal(t, 0, policy.OkCode)
	assert.Equal(t, "success", policy.OkMessage)
	assert.False(t, policy.ExposeSuccess)
	assert.Equal(t, 40404, policy.NotFoundCode)
	assert.True(t, policy.IsOk(0))
}

func TestNewConfigBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("ServicePort = ["), 0o600))
	t.Chdir(dir)
	t.Setenv("CONFIG_NAME", "")

	_, err := NewConfig()
	assert.Error(t, err)
}
