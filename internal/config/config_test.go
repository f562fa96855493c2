package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/campusmap/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoadFromEnv(t *testing.T) {
	t.Setenv("CAMPUSMAP_ENV", "local")
	t.Setenv("CAMPUSMAP_PROVIDER_TYPE", "nominatim")
	t.Setenv("CAMPUSMAP_PROVIDER_KEY", "testAPIKey")
	t.Setenv("CAMPUSMAP_CACHE_TTL", "10m")
	t.Setenv("CAMPUSMAP_STYLING_CONFIG", "uno.yaml")
	t.Setenv("CAMPUSMAP_ROSTER_FILE", "students.json")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "uno.yaml", cfg.StylingConfig)
	assert.Equal(t, "students.json", cfg.RosterFile)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 1, cfg.RateLimit)
	assert.True(t, cfg.ExportEnabled())
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")

	cfg := config.MustLoad()

	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.ExportEnabled())
}

func TestMustLoad_PortError(t *testing.T) {
	t.Setenv("CAMPUSMAP_HTTP_PORT", "error_value")

	assert.PanicsWithValue(t, "failed to parse port for http server from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_WorkersError(t *testing.T) {
	t.Setenv("CAMPUSMAP_WORKERS", "error_value")

	assert.PanicsWithValue(t, "failed to parse workers from configuration, must be an integer types", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("CAMPUSMAP_PROVIDER_RATE", "error_value")

	assert.PanicsWithValue(t,
		"failed to parse provider rate limit from configuration, must be an integer types",
		func() { config.MustLoad() },
	)
}

func TestMustLoad_CacheTTLError(t *testing.T) {
	t.Setenv("CAMPUSMAP_CACHE_TTL", "error_value")

	assert.PanicsWithValue(t, "failed to parse cache ttl from configuration", func() {
		config.MustLoad()
	})
}
