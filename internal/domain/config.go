package domain

// AnalysisConfig carries every tunable constant of the pipeline.
// Components take it explicitly instead of reading ambient state so tests
// can run with non-default windows and thresholds.
type AnalysisConfig struct {
	// ShortWindowDays and LongWindowDays are the rolling-average windows,
	// counted in trailing rows of a product's daily series.
	ShortWindowDays int
	LongWindowDays  int

	// DecliningBelow and GrowingFrom bound the trend-ratio bands:
	// ratio < DecliningBelow -> Declining, ratio >= GrowingFrom -> Growing,
	// Plateau in between. Both bounds are inclusive on the lower side of
	// their band.
	DecliningBelow float64
	GrowingFrom    float64

	// ReactivationMarginThreshold marks high-margin declining products as
	// reactivation targets.
	ReactivationMarginThreshold float64

	// BaselineLagWeeks is the per-product lag used for baseline lookups
	// (13 weeks ~ 90 days).
	BaselineLagWeeks int

	// KPIReferenceWeeks is the length of the early reference window used
	// for the global KPI baselines (weekly revenue, AOV).
	KPIReferenceWeeks int

	// Epsilon is the shared divide-by-zero offset.
	Epsilon float64
}

// DefaultAnalysisConfig returns the production constants.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		ShortWindowDays:             30,
		LongWindowDays:              90,
		DecliningBelow:              0.95,
		GrowingFrom:                 1.05,
		ReactivationMarginThreshold: 0.40,
		BaselineLagWeeks:            13,
		KPIReferenceWeeks:           13,
		Epsilon:                     1e-9,
	}
}
