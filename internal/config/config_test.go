package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-loot/internal/config"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, "default", cfg.WorldID)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "common", cfg.TextRowPolicy)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOOT_CONCURRENCY", "8")
	t.Setenv("LOOT_SESSION_TTL", "5m")
	t.Setenv("TEXT_ROW_POLICY", "skip")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "skip", cfg.TextRowPolicy)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORLD_ID=dotenv-world\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("WORLD_ID") })

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-world", cfg.WorldID)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOOT_CONCURRENCY", "0")
	t.Setenv("TEXT_ROW_POLICY", "drop")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOOT_CONCURRENCY")
	assert.Contains(t, err.Error(), "TEXT_ROW_POLICY")
}

func TestLoadRejectsUnparseable(t *testing.T) {
	t.Setenv("LOOT_SESSION_TTL", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.IsInvalidArgument(err))
}
