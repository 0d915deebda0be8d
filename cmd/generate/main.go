// Package main seeds a development database with synthetic retail data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"tailwagg-analytics/internal/config"
	"tailwagg-analytics/internal/generator"
	"tailwagg-analytics/internal/storage/migrations"
	"tailwagg-analytics/internal/storage/postgres"
)

const (
	connectRetries    = 10
	connectRetryDelay = 2 * time.Second
)

func main() {
	postgresDSN := flag.String("postgres-dsn", "", "Postgres DSN (overrides POSTGRES_DSN)")
	seed := flag.Int64("seed", 0, "Random seed (overrides RANDOM_SEED)")
	products := flag.Int("products", 600, "Number of products to generate")
	customers := flag.Int("customers", 6000, "Number of customers to generate")
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
	if *seed != 0 {
		cfg.RandomSeed = *seed
	}

	ctx := context.Background()

	// Retry the connection to tolerate container startup.
	pool, err := connectWithRetry(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logger.Fatal("apply schema", zap.Error(err))
	}

	genCfg := generator.DefaultConfig(time.Now().UTC())
	genCfg.Seed = cfg.RandomSeed
	genCfg.ProductCount = *products
	genCfg.CustomerCount = *customers

	logger.Info("seeding database",
		zap.Int64("seed", genCfg.Seed),
		zap.Time("start_date", genCfg.StartDate),
		zap.Time("end_date", genCfg.EndDate))

	gen := generator.New(genCfg, logger)
	if err := gen.Seed(ctx, postgres.NewSeedStore(pool)); err != nil {
		logger.Fatal("seed database", zap.Error(err))
	}

	logger.Info("data generation completed")
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
