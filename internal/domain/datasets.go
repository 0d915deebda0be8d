package domain

import "time"

// The seven output dataset rows. Field order mirrors the fixed CSV column
// order consumed by the dashboard tooling; renderers in internal/reporting
// must not reorder columns.

// WeeklyProductRow is one row of weekly_product_performance.
type WeeklyProductRow struct {
	WeekStartDate     time.Time
	WeekEndDate       time.Time
	Year              int
	WeekNumber        int
	ProductID         string
	CategoryName      string
	BrandName         string
	TotalUnitsSold    float64
	GrossRevenue      float64
	GrossProfit       float64
	NetProfitMargin   float64
	Rolling30dAvg     float64
	Rolling90dAvg     float64
	TrendRatio        float64
	TrendLabel        TrendLabel
	HasPromotion      bool
	PromoCount        int
	SeasonalEventFlag bool
	EventNames        string
}

// ReactivationRow is one row of reactivation_tracker.
type ReactivationRow struct {
	WeekStartDate        time.Time
	ProductID            string
	CategoryName         string
	NetProfitMargin      float64
	TrendLabel           TrendLabel
	IsReactivationTarget bool
	WeeksDeclining       int
	Baseline90dAvg       *float64 // nil when the product has fewer than lag weeks of history
	CurrentWeeklySales   float64
	VsBaselinePctChange  *float64 // nil when Baseline90dAvg is nil
	TotalProfitAtRisk    float64
}

// SeasonalEventRow is one row of seasonal_event_performance.
type SeasonalEventRow struct {
	WeekStartDate            time.Time
	EventName                string
	EventCategory            string
	TotalTransactions        int
	GrossRevenue             float64
	GrossProfit              float64
	AvgOrderValue            float64
	CategoryBreakdown        string
	VsBaselineRevenueLiftPct float64
	VsBaselineProfitLiftPct  float64
	TopPerformingCategory    string
}

// CategoryWeeklyRow is one row of category_performance_weekly.
type CategoryWeeklyRow struct {
	WeekStartDate       time.Time
	CategoryName        string
	TotalRevenue        float64
	TotalProfit         float64
	TotalUnits          float64
	UniqueProductsSold  int
	AvgMargin           float64
	ProductsDeclining   int
	ProductsGrowing     int
	ProductsPlateau     int
	PromoPenetrationPct float64
	SeasonalEventFlag   bool
}

// PromoEffectivenessRow is one row of promotional_effectiveness.
type PromoEffectivenessRow struct {
	WeekStartDate            time.Time
	CategoryName             string
	HasPromotion             bool
	TransactionCount         int
	AvgRevenuePerTransaction float64
	AvgUnitsPerTransaction   float64
	TotalDiscountAmount      float64
	DiscountPctOfRevenue     float64
	GrossProfit              float64
	NetMargin                float64
	UpliftVsNonPromo         *float64 // nil when the week/category lacks a promo or non-promo side
}

// KPIRow is one row of kpi_dashboard.
type KPIRow struct {
	WeekStartDate            time.Time
	ReactivationRate         float64
	WeeklyRevenue            float64
	VsBaselineRevenueLiftPct float64
	PromotionalROI           float64
	AvgOrderValue            float64
	VsBaselineAOVPct         float64
	GrossProfitMarginPct     float64
	DecliningProductCount    int
	HighMarginDecliningCount int
	SeasonalEventActive      bool
}

// CampaignPhase is one row of the static campaign_timeline_reference table.
type CampaignPhase struct {
	CampaignPhase         string
	StartDate             string
	EndDate               string
	DurationDays          int
	TargetAudience        string
	TargetProducts        string
	Channels              string
	MessagingTheme        string
	RecommendedCategories string
	DiscountRange         string
}
