package config

import (
	"testing"
	"time"

	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{MinLat: 28.5, MinLon: 46.5, MaxLat: 30.1, MaxLon: 48.5}

	assert.True(t, box.Contains(29.3, 47.9))
	assert.True(t, box.Contains(28.5, 46.5)) // edges are inclusive
	assert.True(t, box.Contains(30.1, 48.5))
	assert.False(t, box.Contains(28.4, 47.0))
	assert.False(t, box.Contains(29.0, 48.6))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/zones")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 12*time.Hour, cfg.CycleInterval)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 5, cfg.MinPoints)
	assert.Equal(t, 48, cfg.MinHistoryBuckets)
	assert.Equal(t, 6*time.Hour, cfg.Cooldown)
	assert.InDelta(t, 0.8, cfg.ResolutionSuccessFloor, 1e-9)
	assert.InDelta(t, 0.008, cfg.EpsByLevel[models.LevelDistrict], 1e-9)
	assert.True(t, cfg.FallbackEnabled)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_TierThresholdOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/zones")
	t.Setenv("TIER_THRESHOLD_CRITICAL", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, cfg.TierThresholds[models.TierCritical], 1e-9)
	assert.InDelta(t, 3.0, cfg.TierThresholds[models.TierLow], 1e-9)
}

func TestLoadChannelRoutes_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/zones")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []ChannelRoute{
		{Channel: "opsfeed", Recipient: "zone-analyst"},
	}, cfg.ChannelsByTier[models.TierLow])

	// Higher tiers inherit every lower tier's routes.
	assert.Equal(t, []ChannelRoute{
		{Channel: "opsfeed", Recipient: "zone-analyst"},
		{Channel: "webhook", Recipient: "zone-analyst"},
	}, cfg.ChannelsByTier[models.TierMedium])

	critical := cfg.ChannelsByTier[models.TierCritical]
	require.Len(t, critical, 4)
	assert.Equal(t, ChannelRoute{Channel: "webhook", Recipient: "ops-room"}, critical[3])
}

func TestLoadChannelRoutes_Override(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/zones")
	t.Setenv("CHANNELS_HIGH", "webhook:dispatch, opsfeed:dispatch")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	high := cfg.ChannelsByTier[models.TierHigh]
	require.Len(t, high, 4) // low + medium inherited, plus the two overrides
	assert.Contains(t, high, ChannelRoute{Channel: "webhook", Recipient: "dispatch"})
	assert.Contains(t, high, ChannelRoute{Channel: "opsfeed", Recipient: "dispatch"})
}

func TestLoadConfig_APIKeys(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/zones")
	t.Setenv("API_KEYS", "key-one, key-two")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.APIKeys)
}
