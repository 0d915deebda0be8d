// Package datasets assembles the seven dashboard output datasets from the
// daily featured table and the auxiliary dimensions (calendar events,
// product brands). Each builder is a pure function from immutable inputs
// to a new, fully-ordered output slice.
package datasets

import (
	"fmt"
	"time"

	"tailwagg-analytics/internal/domain"
)

// Inputs are the tables the assembler consumes. Events and Brands are
// optional joins: an empty slice degrades the joined columns to null/empty
// values, it never fails the run.
type Inputs struct {
	Days   []*domain.FeaturedDay
	Events []*domain.CalendarEvent
	Brands []*domain.ProductBrand
}

// Output holds the seven datasets, each already in its final column order
// and sorted ascending by (week_start_date, grouping keys).
type Output struct {
	WeeklyProductPerformance  []*domain.WeeklyProductRow
	ReactivationTracker       []*domain.ReactivationRow
	SeasonalEventPerformance  []*domain.SeasonalEventRow
	CategoryPerformanceWeekly []*domain.CategoryWeeklyRow
	PromotionalEffectiveness  []*domain.PromoEffectivenessRow
	KPIDashboard              []*domain.KPIRow
	CampaignTimeline          []domain.CampaignPhase
}

// Assembler builds the output datasets.
type Assembler struct {
	cfg domain.AnalysisConfig
}

// NewAssembler creates an assembler with the given analysis constants.
func NewAssembler(cfg domain.AnalysisConfig) *Assembler {
	return &Assembler{cfg: cfg}
}

// Assemble derives all seven datasets. It requires at least one featured
// day; everything else degrades gracefully.
func (a *Assembler) Assemble(in Inputs) (*Output, error) {
	if len(in.Days) == 0 {
		return nil, fmt.Errorf("assemble datasets: %w", domain.ErrEmptyInput)
	}

	events := eventsByDate(in.Events)
	brands := brandsByProduct(in.Brands)

	weeklyProduct := a.buildWeeklyProductPerformance(in.Days, events, brands)
	reactivation := a.buildReactivationTracker(weeklyProduct)

	out := &Output{
		WeeklyProductPerformance:  weeklyProduct,
		ReactivationTracker:       reactivation,
		SeasonalEventPerformance:  a.buildSeasonalEventPerformance(in.Days, events),
		CategoryPerformanceWeekly: a.buildCategoryPerformanceWeekly(in.Days, events),
		PromotionalEffectiveness:  a.buildPromotionalEffectiveness(in.Days),
		KPIDashboard:              a.buildKPIDashboard(in.Days, events, reactivation),
		CampaignTimeline:          CampaignTimeline(),
	}
	return out, nil
}

// dateKey normalizes a timestamp to its calendar day in UTC so it can be
// used as a join key.
func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func eventsByDate(events []*domain.CalendarEvent) map[time.Time]*domain.CalendarEvent {
	byDate := make(map[time.Time]*domain.CalendarEvent, len(events))
	for _, e := range events {
		byDate[dateKey(e.Date)] = e
	}
	return byDate
}

func brandsByProduct(brands []*domain.ProductBrand) map[string]string {
	byProduct := make(map[string]string, len(brands))
	for _, b := range brands {
		byProduct[b.ProductID] = b.BrandName
	}
	return byProduct
}
