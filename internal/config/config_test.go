package config_test

import (
	"testing"
	"time"

	"github.com/resonate-app/resonate-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaultModeration(t *testing.T) {
	d := config.DefaultModeration()

	assert.Equal(t, 3, d.FlagForReviewThreshold)
	assert.Equal(t, 5, d.AutoDeleteThreshold)
	assert.Equal(t, 8, d.DeleteAndTempBanThreshold)
	assert.Equal(t, 3, d.UniqueReportersMin)
	assert.Equal(t, 7*24*time.Hour, d.TempBanDuration)
	assert.Equal(t, 24*time.Hour, d.ShortSuspension)
	assert.Equal(t, "@every 10m", d.SweepSchedule)
}

func TestLoadModeration_EnvOverrides(t *testing.T) {
	t.Setenv("MOD_FLAG_FOR_REVIEW", "5")
	t.Setenv("MOD_TEMP_BAN_DURATION", "48h")

	cfg := config.Load()

	assert.Equal(t, 5, cfg.Moderation.FlagForReviewThreshold)
	assert.Equal(t, 48*time.Hour, cfg.Moderation.TempBanDuration)
	// Untouched keys keep their defaults.
	assert.Equal(t, 5, cfg.Moderation.AutoDeleteThreshold)
}

func TestLoadModeration_UnparsableFallsBack(t *testing.T) {
	t.Setenv("MOD_REJECT_PENALTY", "lots")
	t.Setenv("MOD_SHORT_SUSPENSION", "-3h")

	cfg := config.Load()

	assert.Equal(t, 20, cfg.Moderation.RejectPenalty)
	assert.Equal(t, 24*time.Hour, cfg.Moderation.ShortSuspension)
}

func TestDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "app",
		DBPassword: "secret",
		DBName:     "resonate",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal user=app password=secret dbname=resonate port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
