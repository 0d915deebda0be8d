package datasets

import (
	"sort"
	"time"

	"tailwagg-analytics/internal/baseline"
	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/trend"
	"tailwagg-analytics/internal/weekly"
)

type kpiWeekBucket struct {
	revenue  float64
	profit   float64
	discount float64
	rowCount int
	flag     bool
}

// buildKPIDashboard rolls everything up to one row per week. Revenue is
// compared against the mean of the first reference weeks; average order
// value is compared against the mean of per-day AOV over the first 91 days
// of history.
func (a *Assembler) buildKPIDashboard(
	days []*domain.FeaturedDay,
	events map[time.Time]*domain.CalendarEvent,
	reactivation []*domain.ReactivationRow,
) []*domain.KPIRow {
	weeks := make(map[time.Time]*kpiWeekBucket)
	dailyRevSum := make(map[time.Time]float64)
	dailyRevCount := make(map[time.Time]int)
	minDate := time.Time{}

	for _, d := range days {
		week := weekly.WeekStart(d.OrderDate)
		b := weeks[week]
		if b == nil {
			b = &kpiWeekBucket{}
			weeks[week] = b
		}
		b.revenue += d.GrossRevenue
		b.profit += d.GrossProfit
		b.discount += d.TotalDiscount
		b.rowCount++
		if e := events[dateKey(d.OrderDate)]; e != nil && e.SeasonalEventFlag {
			b.flag = true
		}

		day := dateKey(d.OrderDate)
		dailyRevSum[day] += d.GrossRevenue
		dailyRevCount[day]++
		if minDate.IsZero() || day.Before(minDate) {
			minDate = day
		}
	}

	weekStarts := make([]time.Time, 0, len(weeks))
	for w := range weeks {
		weekStarts = append(weekStarts, w)
	}
	sort.Slice(weekStarts, func(i, j int) bool { return weekStarts[i].Before(weekStarts[j]) })

	// Revenue baseline: mean weekly revenue over the opening reference
	// window.
	weekRevenues := make([]float64, len(weekStarts))
	for i, w := range weekStarts {
		weekRevenues[i] = weeks[w].revenue
	}
	baselineRevenue := baseline.PrefixMean(weekRevenues, a.cfg.KPIReferenceWeeks)

	// AOV baseline: mean of the per-day mean revenue for the first 91
	// calendar days.
	aovCutoff := minDate.AddDate(0, 0, 7*a.cfg.KPIReferenceWeeks)
	var aovSum float64
	var aovCount int
	for day, sum := range dailyRevSum {
		if day.Before(aovCutoff) {
			aovSum += sum / float64(dailyRevCount[day])
			aovCount++
		}
	}
	baselineAOV := 0.0
	if aovCount > 0 {
		baselineAOV = aovSum / float64(aovCount)
	}

	decliningByWeek := make(map[time.Time]int)
	targetsByWeek := make(map[time.Time]int)
	for _, r := range reactivation {
		if r.TrendLabel == domain.TrendDeclining {
			decliningByWeek[r.WeekStartDate]++
		}
		if r.IsReactivationTarget {
			targetsByWeek[r.WeekStartDate]++
		}
	}
	ratesByWeek := make(map[time.Time]float64)
	for _, rate := range trend.ReactivationRates(reactivation) {
		ratesByWeek[rate.WeekStart] = rate.RatePct
	}

	rows := make([]*domain.KPIRow, 0, len(weekStarts))
	for _, w := range weekStarts {
		b := weeks[w]
		aov := b.revenue / float64(b.rowCount)
		rows = append(rows, &domain.KPIRow{
			WeekStartDate:            w,
			ReactivationRate:         ratesByWeek[w],
			WeeklyRevenue:            b.revenue,
			VsBaselineRevenueLiftPct: features.SafeDiv(b.revenue-baselineRevenue, baselineRevenue, a.cfg.Epsilon) * 100,
			PromotionalROI:           features.SafeDiv(b.revenue, b.discount, a.cfg.Epsilon),
			AvgOrderValue:            aov,
			VsBaselineAOVPct:         features.SafeDiv(aov-baselineAOV, baselineAOV, a.cfg.Epsilon) * 100,
			GrossProfitMarginPct:     features.SafeDiv(b.profit, b.revenue, a.cfg.Epsilon) * 100,
			DecliningProductCount:    decliningByWeek[w],
			HighMarginDecliningCount: targetsByWeek[w],
			SeasonalEventActive:      b.flag,
		})
	}
	return rows
}
