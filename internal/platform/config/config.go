package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// ErrMissingAgentToken is returned when the gateway would start without a shared secret.
var ErrMissingAgentToken = errors.New("AGENT_TOKEN must be set")

// Config holds application configuration.
type Config struct {
	DatabaseURL      string `mapstructure:"PGSQL_URL"`
	DatabasePassword string `mapstructure:"PGSQL_PASSWORD"`
	StoreDriver      string `mapstructure:"STORE_DRIVER"`
	RunMigrations    bool   `mapstructure:"RUN_MIGRATIONS"`
	EnableDBCheck    bool   `mapstructure:"ENABLE_DB_CHECK"`

	Port         string `mapstructure:"PORT"`
	IsProduction bool   `mapstructure:"IS_PRODUCTION"`

	// AgentToken is the shared secret the desktop agent sends on sync calls.
	AgentToken string `mapstructure:"AGENT_TOKEN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	SyncRateLimit      string   `mapstructure:"SYNC_RATE_LIMIT"`
	RedisURL           string   `mapstructure:"REDIS_URL"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Secrets have no defaults; RequireServe reports the ones a server cannot run without.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PGSQL_PASSWORD", "")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("AGENT_TOKEN", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SYNC_RATE_LIMIT", "120-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		DatabasePassword: v.GetString("PGSQL_PASSWORD"),
		StoreDriver:      strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		RunMigrations:    v.GetBool("RUN_MIGRATIONS"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		AgentToken:       v.GetString("AGENT_TOKEN"),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:        strings.ToLower(v.GetString("LOG_FORMAT")),
		SyncRateLimit:    strings.TrimSpace(v.GetString("SYNC_RATE_LIMIT")),
		RedisURL:         strings.TrimSpace(v.GetString("REDIS_URL")),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		log.Println("Warning: STORE_DRIVER=memory keeps synced data in process memory only.")
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.SyncRateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(cfg.SyncRateLimit); err != nil {
			return nil, fmt.Errorf("invalid SYNC_RATE_LIMIT %q: %w", cfg.SyncRateLimit, err)
		}
	}

	return cfg, nil
}

// RequireServe checks the settings the HTTP server cannot start without.
func (c *Config) RequireServe() error {
	if strings.TrimSpace(c.AgentToken) == "" {
		return ErrMissingAgentToken
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
