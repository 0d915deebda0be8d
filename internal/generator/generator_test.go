package generator

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"tailwagg-analytics/internal/storage/memory"
)

func smallConfig() Config {
	return Config{
		Seed:          42,
		ProductCount:  20,
		CustomerCount: 50,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func runSeed(t *testing.T, cfg Config) *memory.SeedStore {
	t.Helper()
	store := memory.NewSeedStore()
	if err := New(cfg, zap.NewNop()).Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return store
}

func TestSeed_Deterministic(t *testing.T) {
	a := runSeed(t, smallConfig())
	b := runSeed(t, smallConfig())

	if len(a.SalesLines) != len(b.SalesLines) {
		t.Fatalf("sales line counts differ: %d vs %d", len(a.SalesLines), len(b.SalesLines))
	}
	if len(a.Returns) != len(b.Returns) {
		t.Fatalf("return counts differ: %d vs %d", len(a.Returns), len(b.Returns))
	}

	for i := range a.SalesLines {
		x, y := a.SalesLines[i], b.SalesLines[i]
		if x.OrderLineID != y.OrderLineID || x.ProductID != y.ProductID ||
			x.Quantity != y.Quantity || x.UnitPrice != y.UnitPrice ||
			!x.Timestamp.Equal(y.Timestamp) {
			t.Fatalf("sales line %d differs between runs:\n%+v\n%+v", i, x, y)
		}
	}

	for i := range a.Products {
		if a.Products[i].Name != b.Products[i].Name {
			t.Fatalf("product %d name differs: %q vs %q", i, a.Products[i].Name, b.Products[i].Name)
		}
	}
}

func TestSeed_DifferentSeedsDiffer(t *testing.T) {
	cfg := smallConfig()
	a := runSeed(t, cfg)

	cfg.Seed = 43
	b := runSeed(t, cfg)

	if len(a.SalesLines) == 0 || len(b.SalesLines) == 0 {
		t.Fatal("expected both runs to generate sales")
	}

	same := len(a.SalesLines) == len(b.SalesLines)
	if same {
		for i := range a.SalesLines {
			if a.SalesLines[i].UnitPrice != b.SalesLines[i].UnitPrice ||
				a.SalesLines[i].ProductID != b.SalesLines[i].ProductID {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical sales data")
	}
}

func TestSeed_DimensionCounts(t *testing.T) {
	cfg := smallConfig()
	store := runSeed(t, cfg)

	if len(store.Categories) != 5 {
		t.Errorf("categories = %d, want 5", len(store.Categories))
	}
	if len(store.Brands) != 8 {
		t.Errorf("brands = %d, want 8", len(store.Brands))
	}
	if len(store.Products) != cfg.ProductCount {
		t.Errorf("products = %d, want %d", len(store.Products), cfg.ProductCount)
	}
	if len(store.Customers) != cfg.CustomerCount {
		t.Errorf("customers = %d, want %d", len(store.Customers), cfg.CustomerCount)
	}
}

func TestSeed_CalendarCoversEveryDay(t *testing.T) {
	cfg := smallConfig()
	store := runSeed(t, cfg)

	seen := make(map[time.Time]bool)
	for _, e := range store.Events {
		seen[e.Date] = true
		// Every non-event day carries an explicit baseline row.
		if e.EventCategory == "None" && e.SeasonalEventFlag {
			t.Errorf("day %v flagged seasonal without an event", e.Date)
		}
		if e.EventCategory != "None" && !e.SeasonalEventFlag {
			t.Errorf("day %v has event %q but no flag", e.Date, e.EventName)
		}
	}

	for d := cfg.StartDate; !d.After(cfg.EndDate); d = d.AddDate(0, 0, 1) {
		if !seen[d] {
			t.Errorf("calendar missing day %v", d)
		}
	}
}

func TestSeed_ProductsReferenceDimensions(t *testing.T) {
	store := runSeed(t, smallConfig())

	categories := make(map[string]bool)
	for _, c := range store.Categories {
		categories[c.CategoryID] = true
	}
	brands := make(map[string]bool)
	for _, b := range store.Brands {
		brands[b.BrandID] = true
	}

	for _, p := range store.Products {
		if !categories[p.CategoryID] {
			t.Errorf("product %s references unknown category %s", p.ProductID, p.CategoryID)
		}
		if !brands[p.BrandID] {
			t.Errorf("product %s references unknown brand %s", p.ProductID, p.BrandID)
		}
	}
}

func TestSeed_SalesWithinRangeAndFKSafe(t *testing.T) {
	cfg := smallConfig()
	store := runSeed(t, cfg)

	if len(store.SalesLines) == 0 {
		t.Fatal("expected sales lines")
	}

	products := make(map[string]bool)
	for _, p := range store.Products {
		products[p.ProductID] = true
	}
	promos := make(map[string]bool)
	for _, p := range store.Promos {
		promos[p.PromoID] = true
	}

	for _, l := range store.SalesLines {
		if l.Timestamp.Before(cfg.StartDate) || l.Timestamp.After(cfg.EndDate.AddDate(0, 0, 1)) {
			t.Errorf("line %s timestamp %v outside configured range", l.OrderLineID, l.Timestamp)
		}
		if !products[l.ProductID] {
			t.Errorf("line %s references unknown product %s", l.OrderLineID, l.ProductID)
		}
		if l.PromoID != nil && !promos[*l.PromoID] {
			t.Errorf("line %s references unknown promo %s", l.OrderLineID, *l.PromoID)
		}
		if l.Quantity < 1 {
			t.Errorf("line %s quantity %d", l.OrderLineID, l.Quantity)
		}
		if l.DiscountAmount < 0 || l.DiscountAmount > l.UnitPrice {
			t.Errorf("line %s discount %f exceeds price %f", l.OrderLineID, l.DiscountAmount, l.UnitPrice)
		}
	}
}

func TestSeed_ReturnsReferenceSoldLines(t *testing.T) {
	store := runSeed(t, smallConfig())

	lines := make(map[string]*time.Time)
	for _, l := range store.SalesLines {
		if l.IsReturned {
			ts := l.Timestamp
			lines[l.OrderLineID] = &ts
		}
	}

	for _, r := range store.Returns {
		sold, ok := lines[r.OrderLineID]
		if !ok {
			t.Errorf("return %s references order line %s that was not marked returned", r.ReturnID, r.OrderLineID)
			continue
		}
		if !r.Timestamp.After(*sold) {
			t.Errorf("return %s at %v precedes sale at %v", r.ReturnID, r.Timestamp, *sold)
		}
		if r.RefundAmount < 0 {
			t.Errorf("return %s refund %f is negative", r.ReturnID, r.RefundAmount)
		}
	}
}
