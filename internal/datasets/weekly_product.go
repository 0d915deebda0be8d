package datasets

import (
	"sort"
	"time"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/features"
	"tailwagg-analytics/internal/weekly"
)

// productWeekKey groups daily rows into weekly product rows.
type productWeekKey struct {
	week      time.Time
	productID string
	category  string
	brand     string
}

// productWeekBucket accumulates one week of one product's daily rows.
type productWeekBucket struct {
	units, revenue, profit  float64
	r30, r90, ratio, margin float64
	days                    int
	seasonalFlag            bool
	promoCount              int
	eventNames              []*string
}

// buildWeeklyProductPerformance aggregates the daily featured table to
// Monday-anchored weeks per (product, category, brand). Additive measures
// are summed, already-averaged measures are averaged, boolean flags are
// max'd and event names are joined uniquely. The trend label is recomputed
// from the weekly mean ratio. A missing brand lookup or event row degrades
// to empty fields.
func (a *Assembler) buildWeeklyProductPerformance(
	days []*domain.FeaturedDay,
	events map[time.Time]*domain.CalendarEvent,
	brands map[string]string,
) []*domain.WeeklyProductRow {
	buckets := make(map[productWeekKey]*productWeekBucket)

	for _, d := range days {
		key := productWeekKey{
			week:      weekly.WeekStart(d.OrderDate),
			productID: d.ProductID,
			category:  d.CategoryName,
			brand:     brands[d.ProductID],
		}
		b := buckets[key]
		if b == nil {
			b = &productWeekBucket{}
			buckets[key] = b
		}

		b.units += d.TotalUnitsSold
		b.revenue += d.GrossRevenue
		b.profit += d.GrossProfit
		b.r30 += d.Rolling30dAvgSales
		b.r90 += d.Rolling90dAvgSales
		b.ratio += d.TrendRatio
		b.margin += d.NetProfitMargin
		b.days++
		if d.PromoID != nil {
			b.promoCount++
		}
		if e := events[dateKey(d.OrderDate)]; e != nil {
			if e.SeasonalEventFlag {
				b.seasonalFlag = true
			}
			name := e.EventName
			b.eventNames = append(b.eventNames, &name)
		}
	}

	rows := make([]*domain.WeeklyProductRow, 0, len(buckets))
	for key, b := range buckets {
		period := weekly.PeriodOf(key.week)
		n := float64(b.days)
		meanRatio := b.ratio / n

		rows = append(rows, &domain.WeeklyProductRow{
			WeekStartDate:     period.Start,
			WeekEndDate:       period.End,
			Year:              period.Year,
			WeekNumber:        period.WeekNumber,
			ProductID:         key.productID,
			CategoryName:      key.category,
			BrandName:         key.brand,
			TotalUnitsSold:    b.units,
			GrossRevenue:      b.revenue,
			GrossProfit:       b.profit,
			NetProfitMargin:   b.margin / n,
			Rolling30dAvg:     b.r30 / n,
			Rolling90dAvg:     b.r90 / n,
			TrendRatio:        meanRatio,
			TrendLabel:        features.ClassifyTrend(meanRatio, a.cfg),
			HasPromotion:      b.promoCount > 0,
			PromoCount:        b.promoCount,
			SeasonalEventFlag: b.seasonalFlag,
			EventNames:        weekly.JoinUniqueNonNull(b.eventNames),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].WeekStartDate.Equal(rows[j].WeekStartDate) {
			return rows[i].WeekStartDate.Before(rows[j].WeekStartDate)
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	return rows
}
