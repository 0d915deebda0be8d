// Package main applies the embedded database schemas.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tailwagg-analytics/internal/config"
	"tailwagg-analytics/internal/storage/migrations"
	"tailwagg-analytics/internal/storage/postgres"
)

const (
	connectRetries    = 10
	connectRetryDelay = 2 * time.Second
)

func main() {
	postgresDSN := flag.String("postgres-dsn", "", "Postgres DSN (overrides POSTGRES_DSN)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse DSN (overrides CLICKHOUSE_DSN); empty skips ClickHouse")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *postgresDSN != "" {
		cfg.PostgresDSN = *postgresDSN
	}
	if *clickhouseDSN != "" {
		cfg.ClickhouseDSN = *clickhouseDSN
	}

	ctx := context.Background()

	pool, err := connectWithRetry(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logger.Fatal("apply postgres schema", zap.Error(err))
	}
	logger.Info("postgres schema applied")

	if cfg.ClickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN)
		if err != nil {
			logger.Fatal("apply clickhouse schema", zap.Error(err))
		}
		conn.Close()
		logger.Info("clickhouse schema applied")
	}
}

func connectWithRetry(ctx context.Context, dsn string, logger *zap.Logger) (*postgres.Pool, error) {
	var lastErr error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		pool, err := postgres.NewPool(ctx, dsn)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		logger.Warn("postgres not ready, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err))
		time.Sleep(connectRetryDelay)
	}
	return nil, lastErr
}
