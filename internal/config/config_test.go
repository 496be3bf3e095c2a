package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "test-key", cfg.Provider.APIKey)
	assert.Equal(t, "https://api.marketfeed.dev/v1", cfg.Provider.BaseURL)
	assert.Equal(t, 10, cfg.Provider.RequestsPerSec)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, 60, cfg.Cache.ResponseTTLSeconds)
	assert.Equal(t, 3, cfg.Dashboard.DefaultPeriods)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "test-key")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CACHE_TTL_SECONDS", "600")
	t.Setenv("DEFAULT_PERIODS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 600, cfg.Cache.TTLSeconds)
	assert.Equal(t, 5, cfg.Dashboard.DefaultPeriods)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_API_KEY")
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "test-key")
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoadPeriodsOutOfRange(t *testing.T) {
	t.Setenv("PROVIDER_API_KEY", "test-key")
	t.Setenv("DEFAULT_PERIODS", "9")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_PERIODS")
}
