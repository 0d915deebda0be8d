// Package reporting renders the assembled datasets to the CSV files the
// dashboard tooling ingests. Column order is part of the contract and must
// match the row struct field order exactly.
package reporting

import (
	"fmt"
	"strconv"
	"strings"

	"tailwagg-analytics/internal/datasets"
	"tailwagg-analytics/internal/domain"
)

const dateLayout = "2006-01-02"

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

// csvField quotes a value when it contains a comma, quote or newline.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func writeRecord(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
	b.WriteByte('\n')
}

// RenderWeeklyProductPerformance renders weekly_product_performance.csv.
func RenderWeeklyProductPerformance(rows []*domain.WeeklyProductRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "week_end_date", "year", "week_number",
		"product_id", "category_name", "brand_name",
		"total_units_sold", "gross_revenue", "gross_profit", "net_profit_margin",
		"rolling_30d_avg_sales", "rolling_90d_avg_sales", "trend_ratio", "trend_label",
		"has_promotion", "promo_count", "seasonal_event_flag", "event_names",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			r.WeekEndDate.Format(dateLayout),
			strconv.Itoa(r.Year),
			strconv.Itoa(r.WeekNumber),
			r.ProductID,
			r.CategoryName,
			r.BrandName,
			formatFloat(r.TotalUnitsSold),
			formatFloat(r.GrossRevenue),
			formatFloat(r.GrossProfit),
			formatFloat(r.NetProfitMargin),
			formatFloat(r.Rolling30dAvg),
			formatFloat(r.Rolling90dAvg),
			formatFloat(r.TrendRatio),
			string(r.TrendLabel),
			formatBool(r.HasPromotion),
			strconv.Itoa(r.PromoCount),
			formatBool(r.SeasonalEventFlag),
			r.EventNames,
		)
	}
	return b.String()
}

// RenderReactivationTracker renders reactivation_tracker.csv. Absent
// baselines render as empty cells.
func RenderReactivationTracker(rows []*domain.ReactivationRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "product_id", "category_name",
		"net_profit_margin", "trend_label", "is_reactivation_target",
		"weeks_declining", "baseline_90d_avg", "current_weekly_sales",
		"vs_baseline_pct_change", "total_profit_at_risk",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			r.ProductID,
			r.CategoryName,
			formatFloat(r.NetProfitMargin),
			string(r.TrendLabel),
			formatBool(r.IsReactivationTarget),
			strconv.Itoa(r.WeeksDeclining),
			formatOptFloat(r.Baseline90dAvg),
			formatFloat(r.CurrentWeeklySales),
			formatOptFloat(r.VsBaselinePctChange),
			formatFloat(r.TotalProfitAtRisk),
		)
	}
	return b.String()
}

// RenderSeasonalEventPerformance renders seasonal_event_performance.csv.
func RenderSeasonalEventPerformance(rows []*domain.SeasonalEventRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "event_name", "event_category",
		"total_transactions", "gross_revenue", "gross_profit", "avg_order_value",
		"category_breakdown", "vs_baseline_revenue_lift_pct",
		"vs_baseline_profit_lift_pct", "top_performing_category",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			r.EventName,
			r.EventCategory,
			strconv.Itoa(r.TotalTransactions),
			formatFloat(r.GrossRevenue),
			formatFloat(r.GrossProfit),
			formatFloat(r.AvgOrderValue),
			r.CategoryBreakdown,
			formatFloat(r.VsBaselineRevenueLiftPct),
			formatFloat(r.VsBaselineProfitLiftPct),
			r.TopPerformingCategory,
		)
	}
	return b.String()
}

// RenderCategoryPerformanceWeekly renders category_performance_weekly.csv.
func RenderCategoryPerformanceWeekly(rows []*domain.CategoryWeeklyRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "category_name",
		"total_revenue", "total_profit", "total_units", "unique_products_sold",
		"avg_margin", "products_declining", "products_growing", "products_plateau",
		"promo_penetration_pct", "seasonal_event_flag",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			r.CategoryName,
			formatFloat(r.TotalRevenue),
			formatFloat(r.TotalProfit),
			formatFloat(r.TotalUnits),
			strconv.Itoa(r.UniqueProductsSold),
			formatFloat(r.AvgMargin),
			strconv.Itoa(r.ProductsDeclining),
			strconv.Itoa(r.ProductsGrowing),
			strconv.Itoa(r.ProductsPlateau),
			formatFloat(r.PromoPenetrationPct),
			formatBool(r.SeasonalEventFlag),
		)
	}
	return b.String()
}

// RenderPromotionalEffectiveness renders promotional_effectiveness.csv.
func RenderPromotionalEffectiveness(rows []*domain.PromoEffectivenessRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "category_name", "has_promotion",
		"transaction_count", "avg_revenue_per_transaction", "avg_units_per_transaction",
		"total_discount_amount", "discount_pct_of_revenue",
		"gross_profit", "net_margin", "uplift_vs_non_promo",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			r.CategoryName,
			formatBool(r.HasPromotion),
			strconv.Itoa(r.TransactionCount),
			formatFloat(r.AvgRevenuePerTransaction),
			formatFloat(r.AvgUnitsPerTransaction),
			formatFloat(r.TotalDiscountAmount),
			formatFloat(r.DiscountPctOfRevenue),
			formatFloat(r.GrossProfit),
			formatFloat(r.NetMargin),
			formatOptFloat(r.UpliftVsNonPromo),
		)
	}
	return b.String()
}

// RenderKPIDashboard renders kpi_dashboard.csv.
func RenderKPIDashboard(rows []*domain.KPIRow) string {
	var b strings.Builder
	writeRecord(&b,
		"week_start_date", "reactivation_rate", "weekly_revenue",
		"vs_baseline_revenue_lift_pct", "promotional_roi",
		"avg_order_value", "vs_baseline_aov_pct", "gross_profit_margin_pct",
		"declining_product_count", "high_margin_declining_count", "seasonal_event_active",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.WeekStartDate.Format(dateLayout),
			formatFloat(r.ReactivationRate),
			formatFloat(r.WeeklyRevenue),
			formatFloat(r.VsBaselineRevenueLiftPct),
			formatFloat(r.PromotionalROI),
			formatFloat(r.AvgOrderValue),
			formatFloat(r.VsBaselineAOVPct),
			formatFloat(r.GrossProfitMarginPct),
			strconv.Itoa(r.DecliningProductCount),
			strconv.Itoa(r.HighMarginDecliningCount),
			formatBool(r.SeasonalEventActive),
		)
	}
	return b.String()
}

// RenderCampaignTimeline renders campaign_timeline_reference.csv.
func RenderCampaignTimeline(rows []domain.CampaignPhase) string {
	var b strings.Builder
	writeRecord(&b,
		"campaign_phase", "start_date", "end_date", "duration_days",
		"target_audience", "target_products", "channels",
		"messaging_theme", "recommended_categories", "discount_range",
	)
	for _, r := range rows {
		writeRecord(&b,
			r.CampaignPhase,
			r.StartDate,
			r.EndDate,
			strconv.Itoa(r.DurationDays),
			r.TargetAudience,
			r.TargetProducts,
			r.Channels,
			r.MessagingTheme,
			r.RecommendedCategories,
			r.DiscountRange,
		)
	}
	return b.String()
}

// Render maps dataset file names to their rendered content.
func Render(out *datasets.Output) map[string]string {
	return map[string]string{
		"weekly_product_performance.csv":  RenderWeeklyProductPerformance(out.WeeklyProductPerformance),
		"reactivation_tracker.csv":        RenderReactivationTracker(out.ReactivationTracker),
		"seasonal_event_performance.csv":  RenderSeasonalEventPerformance(out.SeasonalEventPerformance),
		"category_performance_weekly.csv": RenderCategoryPerformanceWeekly(out.CategoryPerformanceWeekly),
		"promotional_effectiveness.csv":   RenderPromotionalEffectiveness(out.PromotionalEffectiveness),
		"kpi_dashboard.csv":               RenderKPIDashboard(out.KPIDashboard),
		"campaign_timeline_reference.csv": RenderCampaignTimeline(out.CampaignTimeline),
	}
}
