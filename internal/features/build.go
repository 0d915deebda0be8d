package features

import (
	"fmt"

	"tailwagg-analytics/internal/domain"
)

// BuildFeatures produces the daily featured table: observations sorted by
// (product, date) with rolling averages, trend ratio/label and net profit
// margin appended. Output row count equals input row count.
func BuildFeatures(observations []*domain.DailyObservation, cfg domain.AnalysisConfig) ([]*domain.FeaturedDay, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("build features: %w", domain.ErrEmptyInput)
	}

	rows := make([]*domain.DailyObservation, len(observations))
	copy(rows, observations)
	SortObservations(rows)

	rolling, err := RollingAverages(rows, ColTotalUnitsSold, []int{cfg.ShortWindowDays, cfg.LongWindowDays})
	if err != nil {
		return nil, fmt.Errorf("build features: %w", err)
	}
	shortSeries := rolling[cfg.ShortWindowDays]
	longSeries := rolling[cfg.LongWindowDays]

	featured := make([]*domain.FeaturedDay, len(rows))
	for i, row := range rows {
		ratio := TrendRatio(shortSeries[i], longSeries[i], cfg.Epsilon)
		featured[i] = &domain.FeaturedDay{
			DailyObservation:   *row,
			Rolling30dAvgSales: shortSeries[i],
			Rolling90dAvgSales: longSeries[i],
			TrendRatio:         ratio,
			TrendLabel:         ClassifyTrend(ratio, cfg),
			NetProfitMargin:    NetProfitMargin(row.GrossProfit, row.GrossRevenue, cfg.Epsilon),
		}
	}

	return featured, nil
}
