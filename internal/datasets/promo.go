package datasets

import (
	"sort"
	"time"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/weekly"
)

type promoWeekKey struct {
	week     time.Time
	category string
	hasPromo bool
}

type promoWeekBucket struct {
	transactions int
	revenue      float64
	units        float64
	discount     float64
	profit       float64
}

// buildPromotionalEffectiveness splits each (week, category) into its promo
// and non-promo sides and compares average revenue per transaction between
// them. Uplift is only defined when both sides exist in that week.
func (a *Assembler) buildPromotionalEffectiveness(days []*domain.FeaturedDay) []*domain.PromoEffectivenessRow {
	buckets := make(map[promoWeekKey]*promoWeekBucket)

	for _, d := range days {
		key := promoWeekKey{
			week:     weekly.WeekStart(d.OrderDate),
			category: d.CategoryName,
			hasPromo: d.PromoID != nil,
		}
		b := buckets[key]
		if b == nil {
			b = &promoWeekBucket{}
			buckets[key] = b
		}
		b.transactions++
		b.revenue += d.GrossRevenue
		b.units += d.TotalUnitsSold
		b.discount += d.TotalDiscount
		b.profit += d.GrossProfit
	}

	rows := make([]*domain.PromoEffectivenessRow, 0, len(buckets))
	for key, b := range buckets {
		n := float64(b.transactions)
		rows = append(rows, &domain.PromoEffectivenessRow{
			WeekStartDate:            key.week,
			CategoryName:             key.category,
			HasPromotion:             key.hasPromo,
			TransactionCount:         b.transactions,
			AvgRevenuePerTransaction: b.revenue / n,
			AvgUnitsPerTransaction:   b.units / n,
			TotalDiscountAmount:      b.discount,
			DiscountPctOfRevenue:     features.SafeDiv(b.discount, b.revenue, a.cfg.Epsilon) * 100,
			GrossProfit:              b.profit,
			NetMargin:                features.SafeDiv(b.profit, b.revenue, a.cfg.Epsilon) * 100,
		})
	}

	// Uplift needs both sides of the same (week, category).
	type sideKey struct {
		week     time.Time
		category string
	}
	avgBySide := make(map[sideKey]map[bool]float64)
	for _, r := range rows {
		k := sideKey{week: r.WeekStartDate, category: r.CategoryName}
		if avgBySide[k] == nil {
			avgBySide[k] = make(map[bool]float64, 2)
		}
		avgBySide[k][r.HasPromotion] = r.AvgRevenuePerTransaction
	}
	// The same uplift value lands on both sides of the pair.
	for _, r := range rows {
		sides := avgBySide[sideKey{week: r.WeekStartDate, category: r.CategoryName}]
		promoAvg, hasPromoSide := sides[true]
		nonPromo, hasPlainSide := sides[false]
		if !hasPromoSide || !hasPlainSide {
			continue
		}
		uplift := features.SafeDiv(promoAvg-nonPromo, nonPromo, a.cfg.Epsilon) * 100
		r.UpliftVsNonPromo = &uplift
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].WeekStartDate.Equal(rows[j].WeekStartDate) {
			return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
		}
		if rows[i].CategoryName != rows[j].CategoryName {
			return rows[i].CategoryName < rows[j].CategoryName
		}
		return !rows[i].HasPromotion && rows[j].HasPromotion
	})
	return rows
}
