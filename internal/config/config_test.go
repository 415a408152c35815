package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3001", cfg.HTTPPort)
	assert.Equal(t, "us-west-1", cfg.AWSRegion)
	assert.Equal(t, "participants", cfg.ParticipantTable)
	assert.Equal(t, "announcements", cfg.AnnounceTable)
	assert.Equal(t, "schedules", cfg.ScheduleTable)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PARTICIPANT_TABLE", "prod-participants")
	t.Setenv("RATE_LIMIT_PER_MIN", "30")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "prod-participants", cfg.ParticipantTable)
	assert.Equal(t, 30, cfg.RateLimitPerMin)
}

func TestIntEnvFallbackOnGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MIN", "not-a-number")

	cfg := Load()
	assert.Equal(t, 120, cfg.RateLimitPerMin)
}
