// Package generator produces deterministic synthetic retail data for a
// development database: dimensions, three years of sales fact rows with
// seasonal and promotional demand patterns, FK-safe returns and a calendar
// event dimension.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"tailwagg-analytics/internal/storage"
)

// Config controls the shape of the generated data.
type Config struct {
	Seed          int64
	ProductCount  int
	CustomerCount int
	StartDate     time.Time
	EndDate       time.Time
}

// DefaultConfig generates three years of history ending at now.
func DefaultConfig(now time.Time) Config {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Config{
		Seed:          42,
		ProductCount:  600,
		CustomerCount: 6000,
		StartDate:     end.AddDate(0, 0, -3*365),
		EndDate:       end,
	}
}

// Generator produces synthetic data. All randomness flows through one
// seeded source, so equal configs generate equal data.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	faker  *gofakeit.Faker
	logger *zap.Logger
}

// New creates a Generator.
func New(cfg Config, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		faker:  gofakeit.New(cfg.Seed),
		logger: logger,
	}
}

// Seed generates all dimensions and facts and persists them through the
// store. Dimension tables go first so fact foreign keys resolve.
func (g *Generator) Seed(ctx context.Context, store storage.SeedStore) error {
	categories := g.Categories()
	brands := g.Brands()
	channels := g.Channels()
	locations := g.Locations()
	promos := g.Promos()
	products := g.Products(categories, brands)
	customers := g.Customers()
	events := g.CalendarEvents()

	g.logger.Info("generated dimensions",
		zap.Int("products", len(products)),
		zap.Int("customers", len(customers)),
		zap.Int("promos", len(promos)),
		zap.Int("calendar_events", len(events)))

	if err := store.InsertCategories(ctx, categories); err != nil {
		return fmt.Errorf("insert categories: %w", err)
	}
	if err := store.InsertBrands(ctx, brands); err != nil {
		return fmt.Errorf("insert brands: %w", err)
	}
	if err := store.InsertChannels(ctx, channels); err != nil {
		return fmt.Errorf("insert channels: %w", err)
	}
	if err := store.InsertLocations(ctx, locations); err != nil {
		return fmt.Errorf("insert locations: %w", err)
	}
	if err := store.InsertPromos(ctx, promos); err != nil {
		return fmt.Errorf("insert promos: %w", err)
	}
	if err := store.InsertProducts(ctx, products); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	if err := store.InsertCustomers(ctx, customers); err != nil {
		return fmt.Errorf("insert customers: %w", err)
	}
	if err := store.InsertCalendarEvents(ctx, events); err != nil {
		return fmt.Errorf("insert calendar events: %w", err)
	}

	sales := g.SalesLines(products, customers, channels, locations, promos)
	g.logger.Info("generated sales lines", zap.Int("rows", len(sales)))
	if err := store.InsertSalesLines(ctx, sales); err != nil {
		return fmt.Errorf("insert sales lines: %w", err)
	}

	returns := g.ReturnsFrom(sales)
	g.logger.Info("generated returns", zap.Int("rows", len(returns)))
	if err := store.InsertReturns(ctx, returns); err != nil {
		return fmt.Errorf("insert returns: %w", err)
	}

	return nil
}

// uniform returns a float in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// weightedChoice picks an index according to the given weights.
func (g *Generator) weightedChoice(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := g.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}
