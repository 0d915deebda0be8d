package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tailwagg-analytics/internal/domain"
	pgstore "tailwagg-analytics/internal/storage/postgres"
)

func TestCalendarStore_GetEvents(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	seed := pgstore.NewSeedStore(pool)

	// Inserted out of order; reads come back date ascending.
	events := []*domain.CalendarEvent{
		{Date: day(2025, 11, 28), EventName: "Black Friday Week", EventCategory: "Holiday", SeasonalEventFlag: true},
		{Date: day(2025, 1, 6), EventName: "Regular Day", EventCategory: "None", SeasonalEventFlag: false},
	}
	require.NoError(t, seed.InsertCalendarEvents(ctx, events))

	store := pgstore.NewCalendarStore(pool)
	got, err := store.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.Equal(t, "Regular Day", got[0].EventName)
	require.False(t, got[0].SeasonalEventFlag)
	require.Equal(t, "Black Friday Week", got[1].EventName)
	require.Equal(t, "Holiday", got[1].EventCategory)
	require.True(t, got[1].SeasonalEventFlag)
	require.Equal(t, day(2025, 11, 28), got[1].Date.UTC())
}

func TestCalendarStore_GetEvents_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := pgstore.NewCalendarStore(pool)
	got, err := store.GetEvents(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}
