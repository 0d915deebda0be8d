package datasets

import (
	"sort"
	"time"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/weekly"
)

type categoryWeekKey struct {
	week     time.Time
	category string
}

type categoryWeekBucket struct {
	revenue, profit, units float64
	products               map[string]struct{}
	declining              int
	growing                int
	plateau                int
	promoDays              int
	transactions           int
	seasonalFlag           bool
}

// buildCategoryPerformanceWeekly aggregates daily rows per (week, category).
// Trend counts come from the daily labels, so one product contributes up to
// seven label observations per week.
func (a *Assembler) buildCategoryPerformanceWeekly(
	days []*domain.FeaturedDay,
	events map[time.Time]*domain.CalendarEvent,
) []*domain.CategoryWeeklyRow {
	buckets := make(map[categoryWeekKey]*categoryWeekBucket)

	for _, d := range days {
		key := categoryWeekKey{week: weekly.WeekStart(d.OrderDate), category: d.CategoryName}
		b := buckets[key]
		if b == nil {
			b = &categoryWeekBucket{products: make(map[string]struct{})}
			buckets[key] = b
		}

		b.revenue += d.GrossRevenue
		b.profit += d.GrossProfit
		b.units += d.TotalUnitsSold
		b.products[d.ProductID] = struct{}{}
		b.transactions++
		if d.PromoID != nil {
			b.promoDays++
		}
		switch d.TrendLabel {
		case domain.TrendDeclining:
			b.declining++
		case domain.TrendGrowing:
			b.growing++
		case domain.TrendPlateau:
			b.plateau++
		}
		if e := events[dateKey(d.OrderDate)]; e != nil && e.SeasonalEventFlag {
			b.seasonalFlag = true
		}
	}

	rows := make([]*domain.CategoryWeeklyRow, 0, len(buckets))
	for key, b := range buckets {
		rows = append(rows, &domain.CategoryWeeklyRow{
			WeekStartDate:       key.week,
			CategoryName:        key.category,
			TotalRevenue:        b.revenue,
			TotalProfit:         b.profit,
			TotalUnits:          b.units,
			UniqueProductsSold:  len(b.products),
			AvgMargin:           features.SafeDiv(b.profit, b.revenue, a.cfg.Epsilon) * 100,
			ProductsDeclining:   b.declining,
			ProductsGrowing:     b.growing,
			ProductsPlateau:     b.plateau,
			PromoPenetrationPct: features.SafeDiv(float64(b.promoDays), float64(b.transactions), a.cfg.Epsilon) * 100,
			SeasonalEventFlag:   b.seasonalFlag,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].WeekStartDate.Equal(rows[j].WeekStartDate) {
			return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})
	return rows
}
