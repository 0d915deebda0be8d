package clickhouse

import (
	"context"
	"fmt"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// DatasetSink implements storage.DatasetSink using ClickHouse. Tables use
// ReplacingMergeTree keyed on the dataset's grouping columns, so re-running
// a pipeline over the same period overwrites rather than duplicates.
type DatasetSink struct {
	conn *Conn
}

// NewDatasetSink creates a new DatasetSink.
func NewDatasetSink(conn *Conn) *DatasetSink {
	return &DatasetSink{conn: conn}
}

// Compile-time interface check.
var _ storage.DatasetSink = (*DatasetSink)(nil)

// InsertWeeklyProductPerformance mirrors the weekly product dataset.
func (s *DatasetSink) InsertWeeklyProductPerformance(ctx context.Context, rows []*domain.WeeklyProductRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO weekly_product_performance (
			week_start_date, week_end_date, year, week_number,
			product_id, category_name, brand_name,
			total_units_sold, gross_revenue, gross_profit, net_profit_margin,
			rolling_30d_avg_sales, rolling_90d_avg_sales, trend_ratio, trend_label,
			has_promotion, promo_count, seasonal_event_flag, event_names
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range rows {
		err = batch.Append(
			r.WeekStartDate, r.WeekEndDate, uint16(r.Year), uint8(r.WeekNumber),
			r.ProductID, r.CategoryName, r.BrandName,
			r.TotalUnitsSold, r.GrossRevenue, r.GrossProfit, r.NetProfitMargin,
			r.Rolling30dAvg, r.Rolling90dAvg, r.TrendRatio, string(r.TrendLabel),
			r.HasPromotion, uint16(r.PromoCount), r.SeasonalEventFlag, r.EventNames,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// InsertKPIDashboard mirrors the KPI dataset.
func (s *DatasetSink) InsertKPIDashboard(ctx context.Context, rows []*domain.KPIRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO kpi_dashboard (
			week_start_date, reactivation_rate, weekly_revenue,
			vs_baseline_revenue_lift_pct, promotional_roi,
			avg_order_value, vs_baseline_aov_pct, gross_profit_margin_pct,
			declining_product_count, high_margin_declining_count, seasonal_event_active
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, r := range rows {
		err = batch.Append(
			r.WeekStartDate, r.ReactivationRate, r.WeeklyRevenue,
			r.VsBaselineRevenueLiftPct, r.PromotionalROI,
			r.AvgOrderValue, r.VsBaselineAOVPct, r.GrossProfitMarginPct,
			uint32(r.DecliningProductCount), uint32(r.HighMarginDecliningCount), r.SeasonalEventActive,
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}
