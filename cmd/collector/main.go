// Command collector runs the YouTube topic-ingestion pipeline once.
// The external scheduler (cron or a workflow orchestrator) invokes it
// daily; a non-zero exit marks the run failed and retry policy is the
// scheduler's concern.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/yt-analytics/youtube-data-collector/internal/collector"
	"github.com/yt-analytics/youtube-data-collector/internal/config"
	"github.com/yt-analytics/youtube-data-collector/internal/db"
	"github.com/yt-analytics/youtube-data-collector/internal/db/repository"
	"github.com/yt-analytics/youtube-data-collector/internal/metrics"
	"github.com/yt-analytics/youtube-data-collector/internal/service/youtube"
	"github.com/yt-analytics/youtube-data-collector/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "collector: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stdout sync errors are harmless

	if cfg.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (APP_YOUTUBE_APIKEY)")
	}

	ctx := context.Background()

	dbCfg := db.DefaultConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.Name
	dbCfg.MaxConns = int32(cfg.Database.MaxConnections)
	dbCfg.MinConns = int32(cfg.Database.MinConnections)
	dbCfg.MaxConnLifetime = cfg.Database.MaxLifetime
	dbCfg.MaxConnIdleTime = cfg.Database.MaxIdleTime

	pool, err := db.NewPool(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close(pool)

	logger.Log.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Name),
	)

	client, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		return fmt.Errorf("create YouTube client: %w", err)
	}

	runMetrics := metrics.NewRunMetrics()
	pipeline := collector.New(
		client,
		repository.NewChannelRepository(pool),
		repository.NewVideoRepository(pool),
		runMetrics,
	)

	runErr := pipeline.Run(ctx)

	if err := runMetrics.Push(cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName, pipeline.RunID); err != nil {
		logger.Log.Warn("Failed to push run metrics",
			zap.Error(err),
			zap.String("gateway", cfg.Metrics.PushgatewayURL),
		)
	}

	if runErr != nil {
		logger.Log.Error("Pipeline run failed", zap.Error(runErr))
		return runErr
	}

	return nil
}
