package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/tally_cloud_sync/internal/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd runs the server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tallysync",
	Short: "Tally Cloud Sync gateway",
	Long: `tallysync receives master and outstanding data pushed by the Tally desktop
agent, reconciles it into the record store and serves it over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l, logErr := logger.New(logger.Config{Level: "info", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}
