package postgres

import (
	"context"
	"fmt"
	"time"

	"tailwagg-analytics/internal/domain"
	"tailwagg-analytics/internal/storage"
)

// SalesStore implements storage.SalesStore using PostgreSQL.
type SalesStore struct {
	pool *Pool
}

// NewSalesStore creates a new SalesStore.
func NewSalesStore(pool *Pool) *SalesStore {
	return &SalesStore{pool: pool}
}

// Compile-time interface check.
var _ storage.SalesStore = (*SalesStore)(nil)

// GetDailyMetrics aggregates the sales fact table to one row per
// (product, category, promo, day). Revenue is net of line discounts;
// profit is revenue minus COGS.
func (s *SalesStore) GetDailyMetrics(ctx context.Context) ([]*domain.DailyObservation, error) {
	query := `
		SELECT
			fs.product_id,
			c.category_name,
			fs.promo_id,
			DATE(fs.order_line_timestamp) AS order_date,
			SUM(fs.quantity) AS total_units_sold,
			SUM((fs.unit_price * fs.quantity) - (fs.discount_amount * fs.quantity)) AS gross_revenue,
			SUM(fs.discount_amount * fs.quantity) AS total_discount,
			SUM(fs.cogs * fs.quantity) AS cogs,
			SUM((fs.unit_price * fs.quantity) - (fs.discount_amount * fs.quantity)) - SUM(fs.cogs * fs.quantity) AS gross_profit
		FROM fact_sales fs
		JOIN dim_product p ON fs.product_id = p.product_id
		JOIN dim_category c ON p.category_id = c.category_id
		GROUP BY 1, 2, 3, 4
		ORDER BY fs.product_id, order_date
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query daily metrics: %w", err)
	}
	defer rows.Close()

	var observations []*domain.DailyObservation
	for rows.Next() {
		var o domain.DailyObservation
		var orderDate time.Time

		err := rows.Scan(
			&o.ProductID,
			&o.CategoryName,
			&o.PromoID,
			&orderDate,
			&o.TotalUnitsSold,
			&o.GrossRevenue,
			&o.TotalDiscount,
			&o.COGS,
			&o.GrossProfit,
		)
		if err != nil {
			return nil, fmt.Errorf("scan daily metrics row: %w", err)
		}

		o.OrderDate = orderDate
		observations = append(observations, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily metrics rows: %w", err)
	}

	return observations, nil
}
