// Package storage defines the persistence interfaces the pipeline and the
// data generator depend on. Implementations live in the postgres,
// clickhouse and memory subpackages.
package storage

import (
	"context"

	"tailwagg-analytics/internal/domain"
)

// SalesStore loads the daily per-product sales facts the pipeline consumes.
type SalesStore interface {
	// GetDailyMetrics returns one row per (product, category, promo, day)
	// aggregated from the sales fact table, in no guaranteed order.
	GetDailyMetrics(ctx context.Context) ([]*domain.DailyObservation, error)
}

// CalendarStore loads the calendar event dimension.
type CalendarStore interface {
	GetEvents(ctx context.Context) ([]*domain.CalendarEvent, error)
}

// ProductBrandStore loads the product to brand lookup.
type ProductBrandStore interface {
	GetProductBrands(ctx context.Context) ([]*domain.ProductBrand, error)
}

// DatasetSink mirrors selected output datasets into an analytical database
// for dashboard tools that read a database instead of files.
type DatasetSink interface {
	InsertWeeklyProductPerformance(ctx context.Context, rows []*domain.WeeklyProductRow) error
	InsertKPIDashboard(ctx context.Context, rows []*domain.KPIRow) error
}

// SeedStore persists synthetic dimension and fact data into the development
// database. Inserts are idempotent: re-seeding an existing database skips
// rows that already exist.
type SeedStore interface {
	InsertCategories(ctx context.Context, rows []*domain.Category) error
	InsertBrands(ctx context.Context, rows []*domain.Brand) error
	InsertChannels(ctx context.Context, rows []*domain.Channel) error
	InsertLocations(ctx context.Context, rows []*domain.Location) error
	InsertPromos(ctx context.Context, rows []*domain.Promo) error
	InsertProducts(ctx context.Context, rows []*domain.Product) error
	InsertCustomers(ctx context.Context, rows []*domain.Customer) error
	InsertCalendarEvents(ctx context.Context, rows []*domain.CalendarEvent) error
	InsertSalesLines(ctx context.Context, rows []*domain.SalesLine) error
	InsertReturns(ctx context.Context, rows []*domain.ReturnLine) error
}
