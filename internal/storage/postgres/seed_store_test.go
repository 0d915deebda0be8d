package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tailwagg-analytics/internal/domain"
	pgstore "tailwagg-analytics/internal/storage/postgres"
)

func TestSeedStore_ReseedingIsNoOp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seed := pgstore.NewSeedStore(pool)

	// Seeding twice must not fail or duplicate rows.
	seedCatalog(t, ctx, seed)
	seedCatalog(t, ctx, seed)

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM dim_product").Scan(&count))
	require.Equal(t, 2, count)

	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM dim_category").Scan(&count))
	require.Equal(t, 2, count)
}

func TestSeedStore_InsertReturnsKeepsFKs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seed := pgstore.NewSeedStore(pool)
	seedCatalog(t, ctx, seed)

	ts := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	line := salesLine("ol_001", "prod_001", ts, 1, 10, 0, 6, nil)
	line.IsReturned = true
	require.NoError(t, seed.InsertSalesLines(ctx, []*domain.SalesLine{line}))

	returns := []*domain.ReturnLine{{
		ReturnID:     "ret_001",
		OrderLineID:  "ol_001",
		ProductID:    "prod_001",
		ReturnReason: "defective",
		Timestamp:    ts.AddDate(0, 0, 5),
		RefundAmount: 10,
	}}
	require.NoError(t, seed.InsertReturns(ctx, returns))

	var count int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM fact_returns").Scan(&count))
	require.Equal(t, 1, count)
}

func TestSeedStore_EmptySliceIsNoOp(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	seed := pgstore.NewSeedStore(pool)
	require.NoError(t, seed.InsertCategories(context.Background(), nil))
}
