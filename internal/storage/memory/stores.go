// Package memory holds in-memory implementations of the storage
// interfaces, used for fixture runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// SalesStore is an in-memory implementation of storage.SalesStore.
type SalesStore struct {
	mu   sync.RWMutex
	data []*domain.DailyObservation
}

// NewSalesStore creates a new in-memory sales store.
func NewSalesStore() *SalesStore {
	return &SalesStore{}
}

// Compile-time interface check.
var _ storage.SalesStore = (*SalesStore)(nil)

// Add appends observations to the store.
func (s *SalesStore) Add(observations ...*domain.DailyObservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range observations {
		copied := *o
		s.data = append(s.data, &copied)
	}
}

// GetDailyMetrics returns all observations ordered by (product, date).
func (s *SalesStore) GetDailyMetrics(_ context.Context) ([]*domain.DailyObservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.DailyObservation, 0, len(s.data))
	for _, o := range s.data {
		copied := *o
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].OrderDate.Before(out[j].OrderDate)
	})
	return out, nil
}

// CalendarStore is an in-memory implementation of storage.CalendarStore.
type CalendarStore struct {
	mu   sync.RWMutex
	data []*domain.CalendarEvent
}

// NewCalendarStore creates a new in-memory calendar store.
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{}
}

// Compile-time interface check.
var _ storage.CalendarStore = (*CalendarStore)(nil)

// Add appends events to the store.
func (s *CalendarStore) Add(events ...*domain.CalendarEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range events {
		copied := *e
		s.data = append(s.data, &copied)
	}
}

// GetEvents returns all events ordered by date.
func (s *CalendarStore) GetEvents(_ context.Context) ([]*domain.CalendarEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.CalendarEvent, 0, len(s.data))
	for _, e := range s.data {
		copied := *e
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// ProductBrandStore is an in-memory implementation of
// storage.ProductBrandStore.
type ProductBrandStore struct {
	mu   sync.RWMutex
	data []*domain.ProductBrand
}

// NewProductBrandStore creates a new in-memory product brand store.
func NewProductBrandStore() *ProductBrandStore {
	return &ProductBrandStore{}
}

// Compile-time interface check.
var _ storage.ProductBrandStore = (*ProductBrandStore)(nil)

// Add appends lookups to the store.
func (s *ProductBrandStore) Add(brands ...*domain.ProductBrand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range brands {
		copied := *b
		s.data = append(s.data, &copied)
	}
}

// GetProductBrands returns all lookups ordered by product_id.
func (s *ProductBrandStore) GetProductBrands(_ context.Context) ([]*domain.ProductBrand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.ProductBrand, 0, len(s.data))
	for _, b := range s.data {
		copied := *b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

// DatasetSink is an in-memory implementation of storage.DatasetSink,
// recording what the pipeline would mirror.
type DatasetSink struct {
	mu     sync.RWMutex
	weekly []*domain.WeeklyProductRow
	kpi    []*domain.KPIRow
}

// NewDatasetSink creates a new in-memory dataset sink.
func NewDatasetSink() *DatasetSink {
	return &DatasetSink{}
}

// Compile-time interface check.
var _ storage.DatasetSink = (*DatasetSink)(nil)

// InsertWeeklyProductPerformance records the weekly product dataset.
func (s *DatasetSink) InsertWeeklyProductPerformance(_ context.Context, rows []*domain.WeeklyProductRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		copied := *r
		s.weekly = append(s.weekly, &copied)
	}
	return nil
}

// InsertKPIDashboard records the KPI dataset.
func (s *DatasetSink) InsertKPIDashboard(_ context.Context, rows []*domain.KPIRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		copied := *r
		s.kpi = append(s.kpi, &copied)
	}
	return nil
}

// WeeklyProductPerformance returns the recorded weekly product rows.
func (s *DatasetSink) WeeklyProductPerformance() []*domain.WeeklyProductRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.WeeklyProductRow, len(s.weekly))
	copy(out, s.weekly)
	return out
}

// KPIDashboard returns the recorded KPI rows.
func (s *DatasetSink) KPIDashboard() []*domain.KPIRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.KPIRow, len(s.kpi))
	copy(out, s.kpi)
	return out
}
