// Package main runs the end-to-end analytics pipeline:
// load facts → daily features → weekly datasets → CSV files (+ optional
// ClickHouse mirror).
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tailwagg-analytics/internal/config"
	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/pipeline"
	"tailwagg-analytics/internal/storage"
	"tailwagg-analytics/internal/storage/clickhouse"
	"tailwagg-analytics/internal/storage/memory"
	"tailwagg-analytics/internal/storage/postgres"
)

func main() {
	outputDir := flag.String("output-dir", "", "Output directory for dataset files (overrides OUTPUT_DIR)")
	postgresDSN := flag.String("postgres-dsn", "", "Postgres DSN (overrides POSTGRES_DSN)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse DSN for the dataset mirror (overrides CLICKHOUSE_DSN)")
	useFixtures := flag.Bool("use-fixtures", false, "Run on built-in fixture data instead of Postgres")
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
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *postgresDSN != "" {
		cfg.PostgresDSN = *postgresDSN
	}
	if *clickhouseDSN != "" {
		cfg.ClickhouseDSN = *clickhouseDSN
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, cancelling run", zap.String("signal", sig.String()))
		cancel()
	}()

	var (
		sales    storage.SalesStore
		calendar storage.CalendarStore
		brands   storage.ProductBrandStore
		opts     []pipeline.Option
	)

	if *useFixtures {
		salesStore, calendarStore, brandStore := fixtureStores()
		sales, calendar, brands = salesStore, calendarStore, brandStore
		logger.Info("running on fixture data")
	} else {
		pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			logger.Fatal("connect postgres", zap.Error(err))
		}
		defer pool.Close()

		sales = postgres.NewSalesStore(pool)
		calendar = postgres.NewCalendarStore(pool)
		brands = postgres.NewProductBrandStore(pool)

		if cfg.ClickhouseDSN != "" {
			conn, err := clickhouse.NewConn(ctx, cfg.ClickhouseDSN)
			if err != nil {
				logger.Fatal("connect clickhouse", zap.Error(err))
			}
			defer conn.Close()
			opts = append(opts, pipeline.WithSink(clickhouse.NewDatasetSink(conn)))
		}
	}

	p := pipeline.New(sales, calendar, brands, cfg.Analysis, cfg.OutputDir, logger, opts...)
	result, err := p.Run(ctx)
	if err != nil {
		if pipeline.IsFatalInput(err) {
			logger.Fatal("input contract violation", zap.Error(err))
		}
		logger.Fatal("pipeline failed", zap.Error(err))
	}

	logger.Info("pipeline completed",
		zap.Int("observations", result.Observations),
		zap.Int("featured_days", result.FeaturedDays),
		zap.Int("files", len(result.Files)),
		zap.Duration("duration", result.Duration))
}

// fixtureStores builds small deterministic in-memory inputs: two products
// over 26 weeks, one ramping down into a decline and one growing.
func fixtureStores() (*memory.SalesStore, *memory.CalendarStore, *memory.ProductBrandStore) {
	sales := memory.NewSalesStore()
	calendar := memory.NewCalendarStore()
	brands := memory.NewProductBrandStore()

	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	days := 26 * 7

	promoID := "flash_2025_1"
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		// Declining: sales decay over the window.
		decliningUnits := 40 * math.Exp(-float64(i)/60)
		sales.Add(&domain.DailyObservation{
			ProductID:      "prod_001",
			CategoryName:   "Toys",
			OrderDate:      date,
			TotalUnitsSold: decliningUnits,
			GrossRevenue:   decliningUnits * 20,
			TotalDiscount:  decliningUnits * 1.5,
			COGS:           decliningUnits * 9,
			GrossProfit:    decliningUnits * 11,
		})

		// Growing, with a promo flag on some days.
		growingUnits := 10 + float64(i)*0.4
		obs := &domain.DailyObservation{
			ProductID:      "prod_002",
			CategoryName:   "Treats",
			OrderDate:      date,
			TotalUnitsSold: growingUnits,
			GrossRevenue:   growingUnits * 12,
			TotalDiscount:  growingUnits * 0.8,
			COGS:           growingUnits * 7,
			GrossProfit:    growingUnits * 5,
		}
		if i%9 == 0 {
			obs.PromoID = &promoID
		}
		sales.Add(obs)

		name, category := "Regular Day", "None"
		if date.Month() == time.February && date.Day() >= 10 && date.Day() <= 16 {
			name, category = "Valentine's Day", "Holiday"
		}
		calendar.Add(&domain.CalendarEvent{
			Date:              date,
			EventName:         name,
			EventCategory:     category,
			SeasonalEventFlag: category != "None",
		})
	}

	brands.Add(
		&domain.ProductBrand{ProductID: "prod_001", ProductName: "Chew Toy 1", BrandName: "Kong"},
		&domain.ProductBrand{ProductID: "prod_002", ProductName: "Treats 2", BrandName: "Greenies"},
	)

	return sales, calendar, brands
}
