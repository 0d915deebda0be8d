package postgres

import (
	"context"
	"fmt"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// SeedStore implements storage.SeedStore using PostgreSQL. Every insert is
// ON CONFLICT DO NOTHING so re-seeding an existing database is a no-op for
// rows that already exist.
type SeedStore struct {
	pool *Pool
}

// NewSeedStore creates a new SeedStore.
func NewSeedStore(pool *Pool) *SeedStore {
	return &SeedStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SeedStore = (*SeedStore)(nil)

// execBulk runs one statement per row inside a single transaction.
func (s *SeedStore) execBulk(ctx context.Context, query string, args func(i int) []any, n int) error {
	if n == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := 0; i < n; i++ {
		if _, err := tx.Exec(ctx, query, args(i)...); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// InsertCategories adds category dimension rows.
func (s *SeedStore) InsertCategories(ctx context.Context, rows []*domain.Category) error {
	query := `
		INSERT INTO dim_category (category_id, category_name)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.CategoryID, r.CategoryName}
	}, len(rows))
}

// InsertBrands adds brand dimension rows.
func (s *SeedStore) InsertBrands(ctx context.Context, rows []*domain.Brand) error {
	query := `
		INSERT INTO dim_brand (brand_id, brand_name)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.BrandID, r.BrandName}
	}, len(rows))
}

// InsertChannels adds channel dimension rows.
func (s *SeedStore) InsertChannels(ctx context.Context, rows []*domain.Channel) error {
	query := `
		INSERT INTO dim_channel (channel_id, channel_name, channel_type)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.ChannelID, r.ChannelName, r.ChannelType}
	}, len(rows))
}

// InsertLocations adds location dimension rows.
func (s *SeedStore) InsertLocations(ctx context.Context, rows []*domain.Location) error {
	query := `
		INSERT INTO dim_location (location_id, location_type, country, region, store_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.LocationID, r.LocationType, r.Country, r.Region, r.StoreID}
	}, len(rows))
}

// InsertPromos adds promotion dimension rows.
func (s *SeedStore) InsertPromos(ctx context.Context, rows []*domain.Promo) error {
	query := `
		INSERT INTO dim_promo (promo_id, promo_name, promo_type, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.PromoID, r.PromoName, r.PromoType, r.StartDate, r.EndDate}
	}, len(rows))
}

// InsertProducts adds product dimension rows.
func (s *SeedStore) InsertProducts(ctx context.Context, rows []*domain.Product) error {
	query := `
		INSERT INTO dim_product (product_id, sku, name, category_id, brand_id, is_active, created_at, discontinued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.ProductID, r.SKU, r.Name, r.CategoryID, r.BrandID, r.IsActive, r.CreatedAt, r.DiscontinuedAt}
	}, len(rows))
}

// InsertCustomers adds customer dimension rows.
func (s *SeedStore) InsertCustomers(ctx context.Context, rows []*domain.Customer) error {
	query := `
		INSERT INTO dim_customer (customer_id, created_at, lifetime_value, loyalty_tier, email_opt_in, acquisition_channel)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.CustomerID, r.CreatedAt, r.LifetimeValue, r.LoyaltyTier, r.EmailOptIn, r.AcquisitionChannel}
	}, len(rows))
}

// InsertCalendarEvents adds calendar event dimension rows.
func (s *SeedStore) InsertCalendarEvents(ctx context.Context, rows []*domain.CalendarEvent) error {
	query := `
		INSERT INTO dim_calendar_event (date, event_name, event_category, seasonal_event_flag)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.Date, r.EventName, r.EventCategory, r.SeasonalEventFlag}
	}, len(rows))
}

// InsertSalesLines adds sales fact rows.
func (s *SeedStore) InsertSalesLines(ctx context.Context, rows []*domain.SalesLine) error {
	query := `
		INSERT INTO fact_sales (
			order_line_id, order_id, product_id, customer_id, channel_id, location_id,
			quantity, unit_price, discount_amount, promo_id, cogs, order_line_timestamp, is_returned
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{
			r.OrderLineID, r.OrderID, r.ProductID, r.CustomerID, r.ChannelID, r.LocationID,
			r.Quantity, r.UnitPrice, r.DiscountAmount, r.PromoID, r.COGS, r.Timestamp, r.IsReturned,
		}
	}, len(rows))
}

// InsertReturns adds return fact rows.
func (s *SeedStore) InsertReturns(ctx context.Context, rows []*domain.ReturnLine) error {
	query := `
		INSERT INTO fact_returns (return_id, order_line_id, product_id, return_reason, return_timestamp, refund_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`
	return s.execBulk(ctx, query, func(i int) []any {
		r := rows[i]
		return []any{r.ReturnID, r.OrderLineID, r.ProductID, r.ReturnReason, r.Timestamp, r.RefundAmount}
	}, len(rows))
}
