package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tailwagg-analytics/internal/domain"
	pgstore "tailwagg-analytics/internal/storage/postgres"
)

func TestSalesStore_GetDailyMetrics(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seed := pgstore.NewSeedStore(pool)
	seedCatalog(t, ctx, seed)

	promoID := "flash_2025_1"
	noon := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
	}

	// Two non-promo lines of prod_001 on the same day collapse into one
	// observation; a promo line on that day is its own group; prod_002
	// sells on the next day.
	lines := []*domain.SalesLine{
		salesLine("ol_001", "prod_001", noon(2025, 1, 6), 2, 10, 1, 6, nil),
		salesLine("ol_002", "prod_001", noon(2025, 1, 6), 1, 10, 1, 6, nil),
		salesLine("ol_003", "prod_001", noon(2025, 1, 6), 1, 10, 3, 6, &promoID),
		salesLine("ol_004", "prod_002", noon(2025, 1, 7), 4, 5, 0, 3, nil),
	}
	require.NoError(t, seed.InsertSalesLines(ctx, lines))

	store := pgstore.NewSalesStore(pool)
	observations, err := store.GetDailyMetrics(ctx)
	require.NoError(t, err)
	require.Len(t, observations, 3)

	// Rows come back ordered by (product, date).
	require.Equal(t, "prod_001", observations[0].ProductID)
	require.Equal(t, "prod_001", observations[1].ProductID)
	require.Equal(t, "prod_002", observations[2].ProductID)

	byPromo := make(map[string]*domain.DailyObservation)
	for _, o := range observations[:2] {
		key := ""
		if o.PromoID != nil {
			key = *o.PromoID
		}
		byPromo[key] = o
	}

	plain := byPromo[""]
	require.NotNil(t, plain)
	require.Equal(t, "Toys", plain.CategoryName)
	require.Equal(t, day(2025, 1, 6), plain.OrderDate.UTC())
	require.InDelta(t, 3, plain.TotalUnitsSold, 1e-9)
	// (10-1)*2 + (10-1)*1
	require.InDelta(t, 27, plain.GrossRevenue, 1e-9)
	require.InDelta(t, 3, plain.TotalDiscount, 1e-9)
	require.InDelta(t, 18, plain.COGS, 1e-9)
	require.InDelta(t, 9, plain.GrossProfit, 1e-9)

	promo := byPromo[promoID]
	require.NotNil(t, promo)
	require.InDelta(t, 1, promo.TotalUnitsSold, 1e-9)
	require.InDelta(t, 7, promo.GrossRevenue, 1e-9)

	treats := observations[2]
	require.Equal(t, "Treats", treats.CategoryName)
	require.Equal(t, day(2025, 1, 7), treats.OrderDate.UTC())
	require.InDelta(t, 20, treats.GrossRevenue, 1e-9)
	require.InDelta(t, 8, treats.GrossProfit, 1e-9)
}

func TestSalesStore_GetDailyMetrics_EmptyTable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := pgstore.NewSalesStore(pool)
	observations, err := store.GetDailyMetrics(context.Background())
	require.NoError(t, err)
	require.Empty(t, observations)
}
