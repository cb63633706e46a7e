package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.FriendLimit)
	assert.Equal(t, 10, cfg.ChallengeCapacity)
	assert.Equal(t, 1024, cfg.MaxRecords)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.RecommendationTTL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.MetricsFile)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("FITNESS_FRIEND_LIMIT", "3")
	t.Setenv("FITNESS_CHALLENGE_CAPACITY", "25")
	t.Setenv("FITNESS_REDIS_ADDR", "localhost:6379")
	t.Setenv("FITNESS_RECOMMENDATION_TTL", "30s")
	t.Setenv("FITNESS_LOG_LEVEL", "debug")
	t.Setenv("FITNESS_METRICS_FILE", "/tmp/fitness.prom")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.FriendLimit)
	assert.Equal(t, 25, cfg.ChallengeCapacity)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.RecommendationTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/fitness.prom", cfg.MetricsFile)
}

func TestNewConfigParseError(t *testing.T) {
	t.Setenv("FITNESS_FRIEND_LIMIT", "not-an-int")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestNewConfigRejectsNegativeLimits(t *testing.T) {
	t.Setenv("FITNESS_CHALLENGE_CAPACITY", "-1")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FITNESS_MAX_RECORDS=7\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Cleanup(func() { os.Unsetenv("FITNESS_MAX_RECORDS") })

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxRecords)
}
