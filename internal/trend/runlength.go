// Package trend tracks per-product state transitions across consecutive
// weekly periods: decline runs, reactivation events and profit at risk.
package trend

import "tailwagg-analytics/internal/domain"

// WeeksDeclining computes the decline run length for each position of one
// product's week-ordered label sequence: the count of consecutive Declining
// labels ending at that position (inclusive), reset to 0 the moment the
// label is anything else.
//
// Implemented as an explicit scan with a (last label, run length)
// accumulator rather than any windowed count, so the reset-on-change
// contract stays auditable: [D,D,P,D,D,D,G] -> [1,2,0,1,2,3,0].
func WeeksDeclining(labels []domain.TrendLabel) []int {
	runs := make([]int, len(labels))
	run := 0
	for i, label := range labels {
		if label == domain.TrendDeclining {
			run++
		} else {
			run = 0
		}
		runs[i] = run
	}
	return runs
}

// Reactivated reports whether a product transitioned out of decline:
// previous week Declining, current week Growing or Plateau.
func Reactivated(prev, current domain.TrendLabel) bool {
	if prev != domain.TrendDeclining {
		return false
	}
	return current == domain.TrendGrowing || current == domain.TrendPlateau
}
