package datasets

import (
	"sort"

	"tailwagg-analytics/internal/baseline"
	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/trend"
)

// buildReactivationTracker derives the per-product decline tracking dataset
// from the weekly product rows. The decline run length is an explicit scan
// over each product's week-ordered partition; the baseline is the product's
// own 90-day rolling average lagged by the configured number of weeks and
// is absent for products with shorter history.
func (a *Assembler) buildReactivationTracker(weeklyRows []*domain.WeeklyProductRow) []*domain.ReactivationRow {
	// Work on a copy ordered by (product, week): run-length and shift
	// state must reset at product boundaries.
	ordered := make([]*domain.WeeklyProductRow, len(weeklyRows))
	copy(ordered, weeklyRows)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ProductID != ordered[j].ProductID {
			return ordered[i].ProductID < ordered[j].ProductID
		}
		return ordered[i].WeekStartDate.Before(ordered[j].WeekStartDate)
	})

	rows := make([]*domain.ReactivationRow, 0, len(ordered))

	start := 0
	for start < len(ordered) {
		end := start
		for end < len(ordered) && ordered[end].ProductID == ordered[start].ProductID {
			end++
		}
		partition := ordered[start:end]

		labels := make([]domain.TrendLabel, len(partition))
		r90 := make([]float64, len(partition))
		for i, w := range partition {
			labels[i] = w.TrendLabel
			r90[i] = w.Rolling90dAvg
		}
		runs := trend.WeeksDeclining(labels)
		baselines := baseline.Shift(r90, a.cfg.BaselineLagWeeks)

		for i, w := range partition {
			isTarget := trend.IsReactivationTarget(w.NetProfitMargin, w.TrendLabel, a.cfg)
			currentSales := w.TotalUnitsSold

			rows = append(rows, &domain.ReactivationRow{
				WeekStartDate:        w.WeekStartDate,
				ProductID:            w.ProductID,
				CategoryName:         w.CategoryName,
				NetProfitMargin:      w.NetProfitMargin,
				TrendLabel:           w.TrendLabel,
				IsReactivationTarget: isTarget,
				WeeksDeclining:       runs[i],
				Baseline90dAvg:       baselines[i],
				CurrentWeeklySales:   currentSales,
				VsBaselinePctChange:  baseline.PctChange(currentSales, baselines[i], a.cfg.Epsilon),
				TotalProfitAtRisk:    trend.ProfitAtRisk(isTarget, baselines[i], currentSales, w.GrossProfit, w.TotalUnitsSold, a.cfg),
			})
		}

		start = end
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].WeekStartDate.Equal(rows[j].WeekStartDate) {
			return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	return rows
}
