package features

import (
	"fmt"
	"sort"

	"tailwagg-analytics/internal/domain"
)

// Value column names accepted by the rolling engine.
const (
	ColTotalUnitsSold = "total_units_sold"
	ColGrossRevenue   = "gross_revenue"
	ColGrossProfit    = "gross_profit"
	ColTotalDiscount  = "total_discount"
	ColCOGS           = "cogs"
)

// valueSelector resolves a column name to a numeric accessor.
// Unknown names are a schema violation: the caller asked for a column the
// observation row does not carry as a numeric measure.
func valueSelector(col string) (func(*domain.DailyObservation) float64, error) {
	switch col {
	case ColTotalUnitsSold:
		return func(o *domain.DailyObservation) float64 { return o.TotalUnitsSold }, nil
	case ColGrossRevenue:
		return func(o *domain.DailyObservation) float64 { return o.GrossRevenue }, nil
	case ColGrossProfit:
		return func(o *domain.DailyObservation) float64 { return o.GrossProfit }, nil
	case ColTotalDiscount:
		return func(o *domain.DailyObservation) float64 { return o.TotalDiscount }, nil
	case ColCOGS:
		return func(o *domain.DailyObservation) float64 { return o.COGS }, nil
	default:
		return nil, fmt.Errorf("%w: no numeric column %q", domain.ErrSchema, col)
	}
}

// SortObservations stable-sorts rows ascending by (product, date).
// Stability preserves the original order of rows sharing a product and date,
// which keeps every downstream computation deterministic.
func SortObservations(rows []*domain.DailyObservation) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].OrderDate.Before(rows[j].OrderDate)
	})
}

// RollingAverages computes one trailing-window mean series per window size
// over rows already sorted by (product, date). The result maps window size
// to a series aligned index-for-index with rows.
//
// Windowing is by trailing row count within each product's series, matching
// one row per day when the series is gap-free. If a product has missing
// days the window still spans the trailing W rows, so the effective time
// span of a "90-day" window stretches. This is a documented approximation
// carried over from the source system, not calendar-exact windowing.
//
// min_periods is 1: a product's first row always yields its own value,
// never a missing one.
func RollingAverages(rows []*domain.DailyObservation, valueCol string, windows []int) (map[int][]float64, error) {
	selector, err := valueSelector(valueCol)
	if err != nil {
		return nil, err
	}

	result := make(map[int][]float64, len(windows))
	for _, w := range windows {
		if w < 1 {
			return nil, fmt.Errorf("%w: rolling window must be >= 1, got %d", domain.ErrSchema, w)
		}
		result[w] = make([]float64, len(rows))
	}

	// Walk each product's contiguous span once per window, keeping a
	// running sum over the trailing w rows.
	start := 0
	for start < len(rows) {
		end := start
		for end < len(rows) && rows[end].ProductID == rows[start].ProductID {
			end++
		}

		for _, w := range windows {
			series := result[w]
			sum := 0.0
			for i := start; i < end; i++ {
				sum += selector(rows[i])
				if i-start >= w {
					sum -= selector(rows[i-w])
				}
				n := i - start + 1
				if n > w {
					n = w
				}
				series[i] = sum / float64(n)
			}
		}

		start = end
	}

	return result, nil
}
