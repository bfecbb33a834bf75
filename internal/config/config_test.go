package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Equal(t, "2ta-auth-store.json", cfg.StoragePath)
	assert.Equal(t, 3200*time.Millisecond, cfg.ToastDuration)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TWOTA_APP_ENV", "production")
	t.Setenv("TWOTA_STORAGE_BACKEND", BackendSQLite)
	t.Setenv("TWOTA_STORAGE_PATH", "/tmp/state.db")
	t.Setenv("TWOTA_TOAST_DURATION", "500ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/state.db", cfg.StoragePath)
	assert.Equal(t, 500*time.Millisecond, cfg.ToastDuration)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("TWOTA_TOAST_DURATION", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
