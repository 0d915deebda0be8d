// Package features derives per-day rolling features from daily observations:
// trailing-window averages, trend classification and profit margin.
package features

// SafeDiv divides numerator by denominator with an epsilon offset so a zero
// denominator yields a large-but-finite (or zero) result instead of NaN/Inf.
// Every ratio in the pipeline goes through this; division is never an error.
func SafeDiv(numerator, denominator, epsilon float64) float64 {
	return numerator / (denominator + epsilon)
}
