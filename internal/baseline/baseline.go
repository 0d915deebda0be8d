// Package baseline compares current metrics against historical references:
// a per-entity lagged value, or a cross-sectional mean computed once over a
// reference subset and joined by key.
package baseline

import (
	"tailwagg-analytics/internal/features"
)

// Shift returns the series lagged by lag positions: element i of the result
// is values[i-lag], or nil for the first lag positions. A series shorter
// than the lag has no defined baseline anywhere; absence propagates as nil,
// never as zero.
func Shift(values []float64, lag int) []*float64 {
	shifted := make([]*float64, len(values))
	if lag < 0 {
		lag = 0
	}
	for i := lag; i < len(values); i++ {
		v := values[i-lag]
		shifted[i] = &v
	}
	return shifted
}

// PctChange is the percentage change of current against baseline,
// epsilon-guarded. Nil baseline yields nil.
func PctChange(current float64, baseline *float64, epsilon float64) *float64 {
	if baseline == nil {
		return nil
	}
	pct := features.SafeDiv(current-*baseline, *baseline, epsilon) * 100
	return &pct
}

// PrefixMean is the mean of the first n values (or of all values when the
// series is shorter), used for early-reference-window baselines. Empty
// input yields 0.
func PrefixMean(values []float64, n int) float64 {
	if n > len(values) {
		n = len(values)
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values[:n] {
		sum += v
	}
	return sum / float64(n)
}

// GroupMeans computes a mean per key over a reference subset, for
// cross-sectional baselines such as the per-category non-promotional mean.
// Keys absent from the subset are simply absent from the result.
func GroupMeans(keys []string, values []float64) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, k := range keys {
		sums[k] += values[i]
		counts[k]++
	}
	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = sum / float64(counts[k])
	}
	return means
}
