package memory

import (
	"context"
	"sync"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// SeedStore is an in-memory implementation of storage.SeedStore, used to
// test the synthetic generator without a database.
type SeedStore struct {
	mu sync.RWMutex

	Categories []*domain.Category
	Brands     []*domain.Brand
	Channels   []*domain.Channel
	Locations  []*domain.Location
	Promos     []*domain.Promo
	Products   []*domain.Product
	Customers  []*domain.Customer
	Events     []*domain.CalendarEvent
	SalesLines []*domain.SalesLine
	Returns    []*domain.ReturnLine
}

// NewSeedStore creates a new in-memory seed store.
func NewSeedStore() *SeedStore {
	return &SeedStore{}
}

// Compile-time interface check.
var _ storage.SeedStore = (*SeedStore)(nil)

func (s *SeedStore) InsertCategories(_ context.Context, rows []*domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Categories = append(s.Categories, rows...)
	return nil
}

func (s *SeedStore) InsertBrands(_ context.Context, rows []*domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Brands = append(s.Brands, rows...)
	return nil
}

func (s *SeedStore) InsertChannels(_ context.Context, rows []*domain.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Channels = append(s.Channels, rows...)
	return nil
}

func (s *SeedStore) InsertLocations(_ context.Context, rows []*domain.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Locations = append(s.Locations, rows...)
	return nil
}

func (s *SeedStore) InsertPromos(_ context.Context, rows []*domain.Promo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Promos = append(s.Promos, rows...)
	return nil
}

func (s *SeedStore) InsertProducts(_ context.Context, rows []*domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products = append(s.Products, rows...)
	return nil
}

func (s *SeedStore) InsertCustomers(_ context.Context, rows []*domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Customers = append(s.Customers, rows...)
	return nil
}

func (s *SeedStore) InsertCalendarEvents(_ context.Context, rows []*domain.CalendarEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, rows...)
	return nil
}

func (s *SeedStore) InsertSalesLines(_ context.Context, rows []*domain.SalesLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SalesLines = append(s.SalesLines, rows...)
	return nil
}

func (s *SeedStore) InsertReturns(_ context.Context, rows []*domain.ReturnLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Returns = append(s.Returns, rows...)
	return nil
}
