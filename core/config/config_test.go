package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "badger", cfg.Storage.KVDriver)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.DefaultExpiry)
	assert.EqualValues(t, 5, cfg.Breaker.FailureThreshold)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Same(t, cfg, Global)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_DEBUG", "on")
	t.Setenv("KV_DRIVER", "memory")
	t.Setenv("CACHE_DEFAULT_EXPIRY", "15m")
	t.Setenv("BREAKER_TIMEOUT", "5s")
	t.Setenv("APP_TIMEZONE", "America/Lima")
	t.Setenv("APP_BASIC_AUTH", "admin:secret, ops:pw")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "memory", cfg.Storage.KVDriver)
	assert.Equal(t, 15*time.Minute, cfg.Cache.DefaultExpiry)
	assert.Equal(t, 5*time.Second, cfg.Breaker.Timeout)
	assert.Equal(t, "America/Lima", cfg.Location().String())
	assert.Equal(t, []string{"admin:secret", "ops:pw"}, cfg.App.BasicAuth)
}

func TestValidate_RejectsUnknownDrivers(t *testing.T) {
	cfg := &Config{
		Storage:  StorageConfig{KVDriver: "etcd"},
		Database: DatabaseConfig{Driver: "sqlite"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Storage.KVDriver = "memory"
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "postgres"
	assert.NoError(t, cfg.Validate())

	cfg.App.BasicAuth = []string{"admin"}
	assert.Error(t, cfg.Validate())
}
