package datasets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"tailwagg-analytics/internal/baseline"
	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/weekly"
)

type eventWeekKey struct {
	week          time.Time
	eventName     string
	eventCategory string
}

type eventWeekBucket struct {
	transactions   int
	revenue        float64
	profit         float64
	categoryCounts map[string]int
}

type eventCategoryKey struct {
	week      time.Time
	eventName string
	category  string
}

type eventCategoryBucket struct {
	revenue float64
	profit  float64
}

// buildSeasonalEventPerformance aggregates event-flagged days per
// (week, event) and compares them against the per-category mean of
// explicitly non-event days. Days with no calendar row join neither side.
func (a *Assembler) buildSeasonalEventPerformance(
	days []*domain.FeaturedDay,
	events map[time.Time]*domain.CalendarEvent,
) []*domain.SeasonalEventRow {
	// Split days into the event subset and the non-event baseline subset.
	var baselineCategories []string
	var baselineRevenue, baselineProfit []float64

	eventBuckets := make(map[eventWeekKey]*eventWeekBucket)
	categoryBuckets := make(map[eventCategoryKey]*eventCategoryBucket)

	for _, d := range days {
		e := events[dateKey(d.OrderDate)]
		if e == nil {
			continue
		}
		if !e.SeasonalEventFlag {
			baselineCategories = append(baselineCategories, d.CategoryName)
			baselineRevenue = append(baselineRevenue, d.GrossRevenue)
			baselineProfit = append(baselineProfit, d.GrossProfit)
			continue
		}

		week := weekly.WeekStart(d.OrderDate)

		wk := eventWeekKey{week: week, eventName: e.EventName, eventCategory: e.EventCategory}
		wb := eventBuckets[wk]
		if wb == nil {
			wb = &eventWeekBucket{categoryCounts: make(map[string]int)}
			eventBuckets[wk] = wb
		}
		wb.transactions++
		wb.revenue += d.GrossRevenue
		wb.profit += d.GrossProfit
		wb.categoryCounts[d.CategoryName]++

		ck := eventCategoryKey{week: week, eventName: e.EventName, category: d.CategoryName}
		cb := categoryBuckets[ck]
		if cb == nil {
			cb = &eventCategoryBucket{}
			categoryBuckets[ck] = cb
		}
		cb.revenue += d.GrossRevenue
		cb.profit += d.GrossProfit
	}

	revenueBaseline := baseline.GroupMeans(baselineCategories, baselineRevenue)
	profitBaseline := baseline.GroupMeans(baselineCategories, baselineProfit)

	// Per (week, event): category breakdown string plus mean lift across
	// the categories that have a baseline.
	type liftKey struct {
		week      time.Time
		eventName string
	}
	type liftAgg struct {
		revenueLiftSum float64
		profitLiftSum  float64
		liftCount      int
		breakdown      []string // "Category: $revenue", sorted by category
	}

	// Sort category keys so breakdown strings and lift means are
	// deterministic.
	catKeys := make([]eventCategoryKey, 0, len(categoryBuckets))
	for k := range categoryBuckets {
		catKeys = append(catKeys, k)
	}
	sort.Slice(catKeys, func(i, j int) bool {
		if !catKeys[i].week.Equal(catKeys[j].week) {
			return catKeys[i].week.Before(catKeys[j].week)
		}
		if catKeys[i].eventName != catKeys[j].eventName {
			return catKeys[i].eventName < catKeys[j].eventName
		}
		return catKeys[i].category < catKeys[j].category
	})

	lifts := make(map[liftKey]*liftAgg)
	for _, k := range catKeys {
		cb := categoryBuckets[k]
		lk := liftKey{week: k.week, eventName: k.eventName}
		la := lifts[lk]
		if la == nil {
			la = &liftAgg{}
			lifts[lk] = la
		}
		la.breakdown = append(la.breakdown, fmt.Sprintf("%s: $%.2f", k.category, cb.revenue))

		if revBase, ok := revenueBaseline[k.category]; ok {
			la.revenueLiftSum += features.SafeDiv(cb.revenue-revBase, revBase, a.cfg.Epsilon) * 100
			la.profitLiftSum += features.SafeDiv(cb.profit-profitBaseline[k.category], profitBaseline[k.category], a.cfg.Epsilon) * 100
			la.liftCount++
		}
	}

	rows := make([]*domain.SeasonalEventRow, 0, len(eventBuckets))
	for k, b := range eventBuckets {
		row := &domain.SeasonalEventRow{
			WeekStartDate:         k.week,
			EventName:             k.eventName,
			EventCategory:         k.eventCategory,
			TotalTransactions:     b.transactions,
			GrossRevenue:          b.revenue,
			GrossProfit:           b.profit,
			AvgOrderValue:         features.SafeDiv(b.revenue, float64(b.transactions), a.cfg.Epsilon),
			TopPerformingCategory: topCategory(b.categoryCounts),
		}
		if la := lifts[liftKey{week: k.week, eventName: k.eventName}]; la != nil {
			row.CategoryBreakdown = strings.Join(la.breakdown, "; ")
			if la.liftCount > 0 {
				row.VsBaselineRevenueLiftPct = la.revenueLiftSum / float64(la.liftCount)
				row.VsBaselineProfitLiftPct = la.profitLiftSum / float64(la.liftCount)
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].WeekStartDate.Equal(rows[j].WeekStartDate) {
			return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
		}
		return rows[i].EventName < rows[j].EventName
	})
	return rows
}

// topCategory returns the most frequent category; ties break to the
// lexicographically smallest name.
func topCategory(counts map[string]int) string {
	best := ""
	bestCount := -1
	for category, count := range counts {
		if count > bestCount || (count == bestCount && category < best) {
			best = category
			bestCount = count
		}
	}
	return best
}
