package postgres

import (
	"context"
	"fmt"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// CalendarStore implements storage.CalendarStore using PostgreSQL.
type CalendarStore struct {
	pool *Pool
}

// NewCalendarStore creates a new CalendarStore.
func NewCalendarStore(pool *Pool) *CalendarStore {
	return &CalendarStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CalendarStore = (*CalendarStore)(nil)

// GetEvents retrieves all calendar events ordered by date ASC.
func (s *CalendarStore) GetEvents(ctx context.Context) ([]*domain.CalendarEvent, error) {
	query := `
		SELECT date, event_name, event_category, seasonal_event_flag
		FROM dim_calendar_event
		ORDER BY date ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query calendar events: %w", err)
	}
	defer rows.Close()

	var events []*domain.CalendarEvent
	for rows.Next() {
		var e domain.CalendarEvent
		if err := rows.Scan(&e.Date, &e.EventName, &e.EventCategory, &e.SeasonalEventFlag); err != nil {
			return nil, fmt.Errorf("scan calendar event row: %w", err)
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar event rows: %w", err)
	}

	return events, nil
}
