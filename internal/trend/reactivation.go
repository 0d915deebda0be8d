package trend

import (
	"sort"
	"time"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
)

// IsReactivationTarget marks a high-margin declining product.
func IsReactivationTarget(netProfitMargin float64, label domain.TrendLabel, cfg domain.AnalysisConfig) bool {
	return netProfitMargin > cfg.ReactivationMarginThreshold && label == domain.TrendDeclining
}

// ProfitAtRisk estimates weekly profit lost if a reactivation target keeps
// declining: the sales shortfall against baseline times per-unit profit.
// Clamped at zero, so a product selling above its baseline never reports
// negative risk. Non-targets and products without a baseline report 0.
func ProfitAtRisk(isTarget bool, baseline *float64, currentSales, grossProfit, unitsSold float64, cfg domain.AnalysisConfig) float64 {
	if !isTarget || baseline == nil {
		return 0
	}
	shortfall := *baseline - currentSales
	if shortfall < 0 {
		shortfall = 0
	}
	return shortfall * features.SafeDiv(grossProfit, unitsSold, cfg.Epsilon)
}

// WeekRate is one week's reactivation outcome across all products.
type WeekRate struct {
	WeekStart time.Time
	// Reactivated counts products whose previous week was Declining and
	// whose current week is Growing or Plateau.
	Reactivated int
	// PreviouslyDeclining counts all products whose previous week was
	// Declining, not just reactivation targets.
	PreviouslyDeclining int
	// RatePct is Reactivated / PreviouslyDeclining * 100, reported as 0
	// when no product was declining in the prior week.
	RatePct float64
}

// labeledWeek is the minimal per-product observation the rate computation
// needs.
type labeledWeek struct {
	productID string
	weekStart time.Time
	label     domain.TrendLabel
}

// ReactivationRates computes the weekly reactivation rate from week-labeled
// product rows. Rows may arrive in any order; each product's history is
// ordered by week before pairing consecutive weeks. Weeks where no product
// had a prior Declining week report a rate of 0.
func ReactivationRates(rows []*domain.ReactivationRow) []WeekRate {
	byProduct := make(map[string][]labeledWeek)
	for _, r := range rows {
		byProduct[r.ProductID] = append(byProduct[r.ProductID], labeledWeek{
			productID: r.ProductID,
			weekStart: r.WeekStartDate,
			label:     r.TrendLabel,
		})
	}

	type counts struct {
		reactivated int
		declining   int
	}
	byWeek := make(map[time.Time]*counts)
	ensure := func(week time.Time) *counts {
		c := byWeek[week]
		if c == nil {
			c = &counts{}
			byWeek[week] = c
		}
		return c
	}

	// Every observed week appears in the output even when no transition
	// landed on it.
	for _, r := range rows {
		ensure(r.WeekStartDate)
	}

	for _, history := range byProduct {
		sort.Slice(history, func(i, j int) bool {
			return history[i].weekStart.Before(history[j].weekStart)
		})
		for i := 1; i < len(history); i++ {
			prev, cur := history[i-1], history[i]
			if prev.label != domain.TrendDeclining {
				continue
			}
			c := ensure(cur.weekStart)
			c.declining++
			if Reactivated(prev.label, cur.label) {
				c.reactivated++
			}
		}
	}

	rates := make([]WeekRate, 0, len(byWeek))
	for week, c := range byWeek {
		rate := WeekRate{
			WeekStart:           week,
			Reactivated:         c.reactivated,
			PreviouslyDeclining: c.declining,
		}
		if c.declining > 0 {
			rate.RatePct = float64(c.reactivated) / float64(c.declining) * 100
		}
		rates = append(rates, rate)
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].WeekStart.Before(rates[j].WeekStart)
	})
	return rates
}
