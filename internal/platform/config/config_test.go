package config_test

import (
	"testing"

	"github.com/SscSPs/tally_cloud_sync/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("AGENT_TOKEN", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "120-M", cfg.SyncRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.RunMigrations)
	assert.ErrorIs(t, cfg.RequireServe(), config.ErrMissingAgentToken)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "postgres://sync@db:5432/tally")
	t.Setenv("PGSQL_PASSWORD", "s3cret")
	t.Setenv("AGENT_TOKEN", "agent-123")
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SYNC_RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://sync@db:5432/tally", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.DatabasePassword)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.SyncRateLimit)
	assert.NoError(t, cfg.RequireServe())
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadRate(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SYNC_RATE_LIMIT", "lots")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
