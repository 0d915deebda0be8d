package trend

import (
	"testing"
	"time"

	"tailwagg-analytics/internal/domain"
)

func TestWeeksDeclining_RunLengths(t *testing.T) {
	D, P, G := domain.TrendDeclining, domain.TrendPlateau, domain.TrendGrowing
	labels := []domain.TrendLabel{D, D, P, D, D, D, G}

	got := WeeksDeclining(labels)
	want := []int{1, 2, 0, 1, 2, 3, 0}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestReactivated_TruthTable(t *testing.T) {
	D, P, G := domain.TrendDeclining, domain.TrendPlateau, domain.TrendGrowing

	cases := []struct {
		prev, current domain.TrendLabel
		want          bool
	}{
		{D, P, true},
		{D, G, true},
		{D, D, false},
		{P, G, false},
		{G, D, false},
		{P, P, false},
	}

	for _, tc := range cases {
		if got := Reactivated(tc.prev, tc.current); got != tc.want {
			t.Errorf("Reactivated(%s, %s) = %v, want %v", tc.prev, tc.current, got, tc.want)
		}
	}
}

func TestIsReactivationTarget(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()

	if !IsReactivationTarget(0.5, domain.TrendDeclining, cfg) {
		t.Error("high-margin declining product should be a target")
	}
	if IsReactivationTarget(0.5, domain.TrendGrowing, cfg) {
		t.Error("growing product should not be a target")
	}
	if IsReactivationTarget(0.3, domain.TrendDeclining, cfg) {
		t.Error("low-margin declining product should not be a target")
	}
	if IsReactivationTarget(0.40, domain.TrendDeclining, cfg) {
		t.Error("margin exactly at threshold should not be a target")
	}
}

func TestProfitAtRisk(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()
	baseline := 100.0

	// Shortfall 40 units at 2.0 profit per unit.
	got := ProfitAtRisk(true, &baseline, 60, 120, 60, cfg)
	if got < 79.9 || got > 80.1 {
		t.Errorf("ProfitAtRisk = %f, want ~80", got)
	}

	// Selling above baseline clamps to zero.
	if got := ProfitAtRisk(true, &baseline, 150, 300, 150, cfg); got != 0 {
		t.Errorf("above-baseline ProfitAtRisk = %f, want 0", got)
	}

	// Non-targets and missing baselines report zero.
	if got := ProfitAtRisk(false, &baseline, 60, 120, 60, cfg); got != 0 {
		t.Errorf("non-target ProfitAtRisk = %f, want 0", got)
	}
	if got := ProfitAtRisk(true, nil, 60, 120, 60, cfg); got != 0 {
		t.Errorf("nil-baseline ProfitAtRisk = %f, want 0", got)
	}
}

func week(n int) time.Time {
	return time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*n)
}

func makeRow(productID string, weekIndex int, label domain.TrendLabel) *domain.ReactivationRow {
	return &domain.ReactivationRow{
		WeekStartDate: week(weekIndex),
		ProductID:     productID,
		TrendLabel:    label,
	}
}

func TestReactivationRates(t *testing.T) {
	D, P, G := domain.TrendDeclining, domain.TrendPlateau, domain.TrendGrowing

	// Week 1: both products were declining in week 0; one recovers.
	rows := []*domain.ReactivationRow{
		makeRow("prod_001", 0, D),
		makeRow("prod_001", 1, P),
		makeRow("prod_002", 0, D),
		makeRow("prod_002", 1, D),
		makeRow("prod_003", 0, G),
		makeRow("prod_003", 1, G),
	}

	rates := ReactivationRates(rows)
	if len(rates) != 2 {
		t.Fatalf("got %d weeks, want 2", len(rates))
	}

	// Week 0 has no prior week: rate 0 with zero denominator.
	if rates[0].PreviouslyDeclining != 0 || rates[0].RatePct != 0 {
		t.Errorf("week 0 = %+v, want zero counts", rates[0])
	}

	if rates[1].PreviouslyDeclining != 2 {
		t.Errorf("week 1 declining = %d, want 2", rates[1].PreviouslyDeclining)
	}
	if rates[1].Reactivated != 1 {
		t.Errorf("week 1 reactivated = %d, want 1", rates[1].Reactivated)
	}
	if rates[1].RatePct != 50 {
		t.Errorf("week 1 rate = %f, want 50", rates[1].RatePct)
	}
}

func TestReactivationRates_ZeroDenominator(t *testing.T) {
	G := domain.TrendGrowing
	rows := []*domain.ReactivationRow{
		makeRow("prod_001", 0, G),
		makeRow("prod_001", 1, G),
	}

	rates := ReactivationRates(rows)
	for _, r := range rates {
		if r.RatePct != 0 {
			t.Errorf("week %v rate = %f, want 0", r.WeekStart, r.RatePct)
		}
	}
}
