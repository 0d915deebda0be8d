package memory

import (
	"context"
	"testing"
	"time"

	"tailwagg-analytics/internal/domain"
)

func obs(productID string, d time.Time, units float64) *domain.DailyObservation {
	return &domain.DailyObservation{
		ProductID:      productID,
		CategoryName:   "Toys",
		OrderDate:      d,
		TotalUnitsSold: units,
	}
}

func TestSalesStore_OrderedByProductThenDate(t *testing.T) {
	s := NewSalesStore()
	d1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	s.Add(obs("prod_002", d1, 5), obs("prod_001", d2, 7), obs("prod_001", d1, 3))

	got, err := s.GetDailyMetrics(context.Background())
	if err != nil {
		t.Fatalf("GetDailyMetrics failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3", len(got))
	}
	if got[0].ProductID != "prod_001" || !got[0].OrderDate.Equal(d1) {
		t.Errorf("first row = %s/%v", got[0].ProductID, got[0].OrderDate)
	}
	if got[2].ProductID != "prod_002" {
		t.Errorf("last row = %s, want prod_002", got[2].ProductID)
	}
}

func TestSalesStore_CopyIsolation(t *testing.T) {
	s := NewSalesStore()
	d := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	original := obs("prod_001", d, 5)
	s.Add(original)

	// Mutating the caller's row must not reach the store.
	original.TotalUnitsSold = 999

	got, _ := s.GetDailyMetrics(context.Background())
	if got[0].TotalUnitsSold != 5 {
		t.Errorf("stored units = %f, caller mutation leaked in", got[0].TotalUnitsSold)
	}

	// Mutating a read result must not reach the store either.
	got[0].TotalUnitsSold = 123
	again, _ := s.GetDailyMetrics(context.Background())
	if again[0].TotalUnitsSold != 5 {
		t.Errorf("stored units = %f, reader mutation leaked in", again[0].TotalUnitsSold)
	}
}

func TestCalendarStore_OrderedByDate(t *testing.T) {
	s := NewCalendarStore()
	d1 := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	s.Add(
		&domain.CalendarEvent{Date: d2, EventName: "Holiday Season"},
		&domain.CalendarEvent{Date: d1, EventName: "Regular Day"},
	)

	got, err := s.GetEvents(context.Background())
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if got[0].EventName != "Regular Day" || got[1].EventName != "Holiday Season" {
		t.Errorf("events out of date order: %s, %s", got[0].EventName, got[1].EventName)
	}
}

func TestProductBrandStore_OrderedByProduct(t *testing.T) {
	s := NewProductBrandStore()
	s.Add(
		&domain.ProductBrand{ProductID: "prod_002", BrandName: "Greenies"},
		&domain.ProductBrand{ProductID: "prod_001", BrandName: "Kong"},
	)

	got, err := s.GetProductBrands(context.Background())
	if err != nil {
		t.Fatalf("GetProductBrands failed: %v", err)
	}
	if got[0].ProductID != "prod_001" || got[1].ProductID != "prod_002" {
		t.Errorf("brands out of product order: %s, %s", got[0].ProductID, got[1].ProductID)
	}
}

func TestDatasetSink_RecordsInserts(t *testing.T) {
	s := NewDatasetSink()
	ctx := context.Background()

	week := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	if err := s.InsertWeeklyProductPerformance(ctx, []*domain.WeeklyProductRow{
		{WeekStartDate: week, ProductID: "prod_001"},
	}); err != nil {
		t.Fatalf("InsertWeeklyProductPerformance failed: %v", err)
	}
	if err := s.InsertKPIDashboard(ctx, []*domain.KPIRow{
		{WeekStartDate: week, WeeklyRevenue: 700},
	}); err != nil {
		t.Fatalf("InsertKPIDashboard failed: %v", err)
	}

	if got := s.WeeklyProductPerformance(); len(got) != 1 || got[0].ProductID != "prod_001" {
		t.Errorf("weekly rows = %+v", got)
	}
	if got := s.KPIDashboard(); len(got) != 1 || got[0].WeeklyRevenue != 700 {
		t.Errorf("kpi rows = %+v", got)
	}
}
