package domain

import "time"

// Dimension and fact types for the development database. These mirror the
// Postgres schema in internal/storage/migrations and exist only for the
// synthetic generator and the loader queries; the pipeline itself never
// touches them.

// Category is one row of dim_category.
type Category struct {
	CategoryID   string
	CategoryName string
}

// Brand is one row of dim_brand.
type Brand struct {
	BrandID   string
	BrandName string
}

// Channel is one row of dim_channel.
type Channel struct {
	ChannelID   string
	ChannelName string
	ChannelType string // Owned, Paid or Earned
}

// Location is one row of dim_location.
type Location struct {
	LocationID   string
	LocationType string // online or store
	Country      string
	Region       string
	StoreID      *string
}

// Promo is one row of dim_promo.
type Promo struct {
	PromoID   string
	PromoName string
	PromoType string // discount, BOGO, bundle or coupon
	StartDate time.Time
	EndDate   time.Time
}

// Product is one row of dim_product.
type Product struct {
	ProductID      string
	SKU            string
	Name           string
	CategoryID     string
	BrandID        string
	IsActive       bool
	CreatedAt      time.Time
	DiscontinuedAt *time.Time
}

// Customer is one row of dim_customer.
type Customer struct {
	CustomerID         string
	CreatedAt          time.Time
	LifetimeValue      float64
	LoyaltyTier        string
	EmailOptIn         bool
	AcquisitionChannel string
}

// SalesLine is one row of fact_sales (one order line).
type SalesLine struct {
	OrderLineID    string
	OrderID        string
	ProductID      string
	CustomerID     string
	ChannelID      string
	LocationID     string
	Quantity       int
	UnitPrice      float64
	DiscountAmount float64
	PromoID        *string
	COGS           float64
	Timestamp      time.Time
	IsReturned     bool
}

// ReturnLine is one row of fact_returns, derived FK-safe from returned
// sales lines.
type ReturnLine struct {
	ReturnID     string
	OrderLineID  string
	ProductID    string
	ReturnReason string
	Timestamp    time.Time
	RefundAmount float64
}
