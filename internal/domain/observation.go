// Package domain contains the core row types flowing through the pipeline.
// All values are derived from the immutable daily fact table and recomputed
// in full on every run; nothing in this package carries mutable state.
package domain

import "time"

// DailyObservation is one row of the daily metrics fact query:
// per product, per calendar day, per promo bucket.
type DailyObservation struct {
	ProductID      string
	CategoryName   string
	PromoID        *string // nil when the sale was not attributed to a promotion
	OrderDate      time.Time
	TotalUnitsSold float64
	GrossRevenue   float64
	TotalDiscount  float64
	COGS           float64
	GrossProfit    float64
}

// FeaturedDay is a DailyObservation with derived rolling features appended.
// Rolling averages use the trailing row-count window within the product's
// date-ordered series (see features.RollingAverages).
type FeaturedDay struct {
	DailyObservation

	Rolling30dAvgSales float64
	Rolling90dAvgSales float64
	TrendRatio         float64
	TrendLabel         TrendLabel
	NetProfitMargin    float64
}

// CalendarEvent is one row of the calendar/events dimension.
type CalendarEvent struct {
	Date              time.Time
	EventName         string
	EventCategory     string
	SeasonalEventFlag bool
}

// ProductBrand maps a product to its display name and brand.
type ProductBrand struct {
	ProductID   string
	ProductName string
	BrandName   string
}
