package main

import (
	"fmt"

	"github.com/SscSPs/tally_cloud_sync/internal/platform/config"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/logger"
	"github.com/SscSPs/tally_cloud_sync/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the record store schema",
	Long:      `Runs the embedded migrations against PGSQL_URL. "up" applies pending migrations; "down" drops every table.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.Up), string(database.Down)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.StoreDriver != config.StoreDriverPostgres {
			return fmt.Errorf("migrations require STORE_DRIVER=%s", config.StoreDriverPostgres)
		}

		log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		return database.RunMigrations(log, cfg.DatabaseURL, cfg.DatabasePassword, database.Direction(args[0]))
	},
}
