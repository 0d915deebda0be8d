package features

import "tailwagg-analytics/internal/domain"

// TrendRatio is the short-window average divided by the long-window average,
// epsilon-guarded.
func TrendRatio(shortAvg, longAvg, epsilon float64) float64 {
	return SafeDiv(shortAvg, longAvg, epsilon)
}

// ClassifyTrend maps a trend ratio onto a label. Bands are inclusive on
// their lower side: exactly DecliningBelow is Plateau, exactly GrowingFrom
// is Growing. The label is a pure function of the ratio; no hidden state.
func ClassifyTrend(ratio float64, cfg domain.AnalysisConfig) domain.TrendLabel {
	switch {
	case ratio < cfg.DecliningBelow:
		return domain.TrendDeclining
	case ratio < cfg.GrowingFrom:
		return domain.TrendPlateau
	default:
		return domain.TrendGrowing
	}
}
