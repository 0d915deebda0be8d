package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage/migrations"
	pgstore "tailwagg-analytics/internal/storage/postgres"
)

// setupTestDB creates a PostgreSQL container for testing and applies the
// embedded migrations. Returns a cleanup function that must be called after
// tests complete.
func setupTestDB(t *testing.T) (*pgstore.Pool, func()) {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	pool, err := pgstore.NewPool(ctx, dsn)
	require.NoError(t, err, "failed to create pool")

	require.NoError(t, migrations.RunPostgresMigrations(ctx, pool), "failed to apply migrations")

	cleanup := func() {
		pool.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return pool, cleanup
}

// seedCatalog inserts the minimal dimension rows the fact tables reference.
func seedCatalog(t *testing.T, ctx context.Context, store *pgstore.SeedStore) {
	t.Helper()

	require.NoError(t, store.InsertCategories(ctx, []*domain.Category{
		{CategoryID: "cat_001", CategoryName: "Toys"},
		{CategoryID: "cat_002", CategoryName: "Treats"},
	}))
	require.NoError(t, store.InsertBrands(ctx, []*domain.Brand{
		{BrandID: "brand_001", BrandName: "Kong"},
		{BrandID: "brand_002", BrandName: "Greenies"},
	}))
	require.NoError(t, store.InsertChannels(ctx, []*domain.Channel{
		{ChannelID: "ch_001", ChannelName: "Website", ChannelType: "Owned"},
	}))
	require.NoError(t, store.InsertLocations(ctx, []*domain.Location{
		{LocationID: "loc_001", LocationType: "online", Country: "US", Region: "National"},
	}))
	require.NoError(t, store.InsertPromos(ctx, []*domain.Promo{
		{
			PromoID:   "flash_2025_1",
			PromoName: "Flash Sale 1",
			PromoType: "discount",
			StartDate: day(2025, 1, 6),
			EndDate:   day(2025, 1, 8),
		},
	}))
	require.NoError(t, store.InsertProducts(ctx, []*domain.Product{
		{
			ProductID:  "prod_001",
			SKU:        "SKU-0001",
			Name:       "Rope Tug Toy",
			CategoryID: "cat_001",
			BrandID:    "brand_001",
			IsActive:   true,
			CreatedAt:  day(2024, 1, 1),
		},
		{
			ProductID:  "prod_002",
			SKU:        "SKU-0002",
			Name:       "Dental Chew Pack",
			CategoryID: "cat_002",
			BrandID:    "brand_002",
			IsActive:   true,
			CreatedAt:  day(2024, 1, 1),
		},
	}))
	require.NoError(t, store.InsertCustomers(ctx, []*domain.Customer{
		{
			CustomerID:         "cust_001",
			CreatedAt:          day(2024, 1, 1),
			LifetimeValue:      250,
			LoyaltyTier:        "Gold",
			EmailOptIn:         true,
			AcquisitionChannel: "organic",
		},
	}))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func salesLine(id string, productID string, ts time.Time, qty int, price, discount, cogs float64, promoID *string) *domain.SalesLine {
	return &domain.SalesLine{
		OrderLineID:    id,
		OrderID:        "order_" + id,
		ProductID:      productID,
		CustomerID:     "cust_001",
		ChannelID:      "ch_001",
		LocationID:     "loc_001",
		Quantity:       qty,
		UnitPrice:      price,
		DiscountAmount: discount,
		PromoID:        promoID,
		COGS:           cogs,
		Timestamp:      ts,
	}
}
