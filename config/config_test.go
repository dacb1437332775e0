package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1200*time.Millisecond, cfg.App.ResolveTimeout)
	assert.Equal(t, 7*24*time.Hour, cfg.App.DeckTTL)
	assert.Empty(t, cfg.Database.DSN)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RESOLVE_TIMEOUT", "500ms")
	t.Setenv("DECK_TTL", "24h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.App.ResolveTimeout)
	assert.Equal(t, 24*time.Hour, cfg.App.DeckTTL)
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("RESOLVE_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1200*time.Millisecond, cfg.App.ResolveTimeout)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Redis.Addr = ""
	assert.Error(t, cfg.Validate())
}
