package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 1830, cfg.MaxProjectionDays)
	assert.Equal(t, 1, cfg.ScheduleLookbackDays)
	assert.Equal(t, 100, cfg.MaterializeQueueSize)
	assert.Equal(t, 2, cfg.MaterializeWorkers)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_PROJECTION_DAYS", "365")
	t.Setenv("MATERIALIZE_WORKERS", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 365, cfg.MaxProjectionDays)
	assert.Equal(t, 2, cfg.MaterializeWorkers, "non-positive worker count falls back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsProduction)
}
