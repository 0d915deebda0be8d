// Package weekly provides Monday-anchored week bucketing and the small
// reducer primitives used by the weekly aggregations.
package weekly

import "time"

// WeekStart floors a date to the most recent Monday on or before it.
// Two dates in the same Mon-Sun span always map to the same week start.
// The result is normalized to midnight UTC.
func WeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday has Sunday == 0; shift so Monday == 0.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// Period is the metadata attached to every weekly row.
type Period struct {
	Start      time.Time
	End        time.Time
	Year       int
	WeekNumber int
}

// PeriodOf returns the week period containing d. Year and WeekNumber come
// from the ISO week calendar of the week start.
func PeriodOf(d time.Time) Period {
	start := WeekStart(d)
	_, week := start.ISOWeek()
	return Period{
		Start:      start,
		End:        start.AddDate(0, 0, 6),
		Year:       start.Year(),
		WeekNumber: week,
	}
}
