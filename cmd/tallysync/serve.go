package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/tally_cloud_sync/internal/adapters/database/memory"
	"github.com/SscSPs/tally_cloud_sync/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/tally_cloud_sync/internal/core/ports/repositories"
	"github.com/SscSPs/tally_cloud_sync/internal/core/services"
	"github.com/SscSPs/tally_cloud_sync/internal/handlers"
	"github.com/SscSPs/tally_cloud_sync/internal/middleware"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/config"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/logger"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/metrics"
	"github.com/SscSPs/tally_cloud_sync/internal/platform/ratelimit"
	"github.com/SscSPs/tally_cloud_sync/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sync gateway HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireServe(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = redisClient.Close() }()
		log.Info("Sync rate limit counters shared through redis")
	}
	syncLimiter, err := ratelimit.NewSyncLimiter(cfg.SyncRateLimit, redisClient)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	container := services.NewServiceContainer(repos, services.WithMetrics(metrics.NewSyncMetrics(registry)))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(log), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}
	handlers.RegisterRoutes(r, cfg, container, handlers.Dependencies{
		SyncLimiter: syncLimiter,
		Gatherer:    registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

// openStore builds the repositories for the configured driver. The returned
// func releases whatever the store holds.
func openStore(ctx context.Context, log *zap.Logger, cfg *config.Config) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("Using in-memory record store; synced data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	default:
		if cfg.RunMigrations {
			if err := database.RunMigrations(log, cfg.DatabaseURL, cfg.DatabasePassword, database.Up); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, log, cfg.DatabaseURL, cfg.DatabasePassword, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(log, pool) }, nil
	}
}
