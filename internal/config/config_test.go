package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MAX_SEARCH_DEPTH", "")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
	assert.Equal(t, "connect4.db", cfg.DatabaseURL)
	assert.Equal(t, 3, cfg.MaxSearchDepth)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Same(t, AppConfig, cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("FRONTEND_URL", "http://front.test")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/c4")
	t.Setenv("REPORT_CACHE_TTL_SECONDS", "30")
	t.Setenv("ARENA_WORKERS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, []string{"http://front.test", "http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres://u:p@localhost:5432/c4?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, 4, cfg.ArenaWorkers)
}

func TestValidate(t *testing.T) {
	base := Config{
		DatabaseDriver:     "sqlite3",
		ArenaWorkers:       1,
		ArenaMaxGames:      1,
		CleanupInterval:    time.Minute,
		SessionIdleTimeout: time.Minute,
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.MaxSearchDepth = -1
	assert.Error(t, bad.Validate())

	bad = base
	bad.DatabaseDriver = "mysql"
	assert.Error(t, bad.Validate())

	bad = base
	bad.ArenaWorkers = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.CleanupInterval = 0
	assert.ErrorContains(t, bad.Validate(), "CLEANUP_INTERVAL_MINUTES")

	bad = base
	bad.SessionIdleTimeout = -time.Minute
	assert.ErrorContains(t, bad.Validate(), "SESSION_IDLE_TIMEOUT_MINUTES")
}

func TestZeroCleanupIntervalFromEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("CLEANUP_INTERVAL_MINUTES", "0")

	assert.Error(t, LoadConfig().Validate())
}
