package generator

import (
	"fmt"
	"time"

	"tailwagg-analytics/internal/domain"
)

func strPtr(s string) *string { return &s }

// Categories returns the fixed category dimension.
func (g *Generator) Categories() []*domain.Category {
	return []*domain.Category{
		{CategoryID: "toys", CategoryName: "Toys"},
		{CategoryID: "treats", CategoryName: "Treats"},
		{CategoryID: "grooming", CategoryName: "Grooming"},
		{CategoryID: "wellness", CategoryName: "Wellness"},
		{CategoryID: "accessories", CategoryName: "Accessories"},
	}
}

// Brands returns the fixed brand dimension.
func (g *Generator) Brands() []*domain.Brand {
	return []*domain.Brand{
		{BrandID: "kong", BrandName: "Kong"},
		{BrandID: "nylabone", BrandName: "Nylabone"},
		{BrandID: "greenies", BrandName: "Greenies"},
		{BrandID: "wellness", BrandName: "Wellness"},
		{BrandID: "blue_buffalo", BrandName: "Blue Buffalo"},
		{BrandID: "purina", BrandName: "Purina"},
		{BrandID: "hills", BrandName: "Hills"},
		{BrandID: "royal_canin", BrandName: "Royal Canin"},
	}
}

// Channels returns the fixed channel dimension.
func (g *Generator) Channels() []*domain.Channel {
	return []*domain.Channel{
		{ChannelID: "online_store", ChannelName: "Online Store", ChannelType: "Owned"},
		{ChannelID: "instore", ChannelName: "Instore", ChannelType: "Owned"},
		{ChannelID: "meta_paid", ChannelName: "Meta Paid", ChannelType: "Paid"},
		{ChannelID: "tiktok_paid", ChannelName: "TikTok Paid", ChannelType: "Paid"},
		{ChannelID: "email", ChannelName: "Email", ChannelType: "Owned"},
		{ChannelID: "sms", ChannelName: "SMS", ChannelType: "Owned"},
		{ChannelID: "amazon", ChannelName: "Amazon", ChannelType: "Earned"},
	}
}

// Locations returns the fixed location dimension.
func (g *Generator) Locations() []*domain.Location {
	return []*domain.Location{
		{LocationID: "online_us", LocationType: "online", Country: "US", Region: "North America"},
		{LocationID: "online_ca", LocationType: "online", Country: "CA", Region: "North America"},
		{LocationID: "store_nyc", LocationType: "store", Country: "US", Region: "North America", StoreID: strPtr("NYC001")},
		{LocationID: "store_la", LocationType: "store", Country: "US", Region: "North America", StoreID: strPtr("LA001")},
		{LocationID: "store_toronto", LocationType: "store", Country: "CA", Region: "North America", StoreID: strPtr("TOR001")},
	}
}

// Promos generates per-year promotional campaigns: fixed holiday windows,
// probabilistic seasonal campaigns and a few flash sales.
func (g *Generator) Promos() []*domain.Promo {
	var promos []*domain.Promo
	counter := 1

	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	for year := g.cfg.StartDate.Year(); year <= g.cfg.EndDate.Year(); year++ {
		promos = append(promos,
			&domain.Promo{
				PromoID:   fmt.Sprintf("black_friday_%d", year),
				PromoName: fmt.Sprintf("Black Friday %d - Up to 50%% Off", year),
				PromoType: "discount",
				StartDate: day(year, time.November, 24),
				EndDate:   day(year, time.November, 30),
			},
			&domain.Promo{
				PromoID:   fmt.Sprintf("holiday_season_%d", year),
				PromoName: fmt.Sprintf("Holiday Season %d Special", year),
				PromoType: "discount",
				StartDate: day(year, time.December, 1),
				EndDate:   day(year, time.December, 31),
			},
		)

		if g.rng.Float64() < 0.8 {
			promos = append(promos, &domain.Promo{
				PromoID:   fmt.Sprintf("valentines_%d", year),
				PromoName: fmt.Sprintf("Valentine's Day %d - Love Your Pet", year),
				PromoType: "discount",
				StartDate: day(year, time.February, 10),
				EndDate:   day(year, time.February, 16),
			})
		}

		if g.rng.Float64() < 0.7 {
			promos = append(promos, &domain.Promo{
				PromoID:   fmt.Sprintf("mothers_day_%d", year),
				PromoName: fmt.Sprintf("Mother's Day %d - Treat Mom's Pet", year),
				PromoType: "discount",
				StartDate: day(year, time.May, 8),
				EndDate:   day(year, time.May, 14),
			})
		}

		if g.rng.Float64() < 0.9 {
			promoType := []string{"BOGO", "bundle", "discount"}[g.rng.Intn(3)]
			promos = append(promos, &domain.Promo{
				PromoID:   fmt.Sprintf("summer_%d_%d", year, counter),
				PromoName: fmt.Sprintf("Summer %d - %s Special", year, promoType),
				PromoType: promoType,
				StartDate: day(year, time.June, 1),
				EndDate:   day(year, time.August, 31),
			})
			counter++
		}

		if g.rng.Float64() < 0.6 {
			promos = append(promos, &domain.Promo{
				PromoID:   fmt.Sprintf("back_to_school_%d", year),
				PromoName: fmt.Sprintf("Back to School %d - Pet Prep", year),
				PromoType: "bundle",
				StartDate: day(year, time.August, 15),
				EndDate:   day(year, time.September, 15),
			})
		}

		flashSales := 2 + g.rng.Intn(3)
		for i := 0; i < flashSales; i++ {
			month := time.Month(1 + g.rng.Intn(12))
			startDay := 1 + g.rng.Intn(28)
			duration := 3 + g.rng.Intn(5)
			endDay := startDay + duration
			if endDay > 28 {
				endDay = 28
			}
			promoType := []string{"discount", "BOGO", "coupon"}[g.rng.Intn(3)]
			promos = append(promos, &domain.Promo{
				PromoID:   fmt.Sprintf("flash_%d_%d", year, counter),
				PromoName: fmt.Sprintf("Flash Sale %d - %s", year, promoType),
				PromoType: promoType,
				StartDate: day(year, month, startDay),
				EndDate:   day(year, month, endDay),
			})
			counter++
		}

		promos = append(promos, &domain.Promo{
			PromoID:   fmt.Sprintf("new_customer_%d", year),
			PromoName: fmt.Sprintf("New Customer %d - Welcome Discount", year),
			PromoType: "coupon",
			StartDate: day(year, time.January, 1),
			EndDate:   day(year, time.December, 31),
		})
	}

	return promos
}

var productNames = []string{
	"Chew Toy", "Treats", "Shampoo", "Supplements", "Collar", "Leash",
	"Bed", "Bowl", "Food", "Snacks", "Brush", "Toothbrush", "Crate",
	"Carrier", "Harness", "Tag",
}

// Products generates the product dimension with random category and brand
// assignments; roughly three quarters are active.
func (g *Generator) Products(categories []*domain.Category, brands []*domain.Brand) []*domain.Product {
	now := g.cfg.EndDate
	products := make([]*domain.Product, 0, g.cfg.ProductCount)

	for i := 0; i < g.cfg.ProductCount; i++ {
		productID := fmt.Sprintf("prod_%03d", i+1)
		category := categories[g.rng.Intn(len(categories))]
		brand := brands[g.rng.Intn(len(brands))]

		var discontinued *time.Time
		if g.rng.Intn(4) == 0 {
			d := now.AddDate(0, 0, -(1 + g.rng.Intn(30)))
			discontinued = &d
		}

		products = append(products, &domain.Product{
			ProductID:      productID,
			SKU:            fmt.Sprintf("SKU-PROD_%03d", i+1),
			Name:           fmt.Sprintf("%s %d", g.faker.RandomString(productNames), i+1),
			CategoryID:     category.CategoryID,
			BrandID:        brand.BrandID,
			IsActive:       g.rng.Intn(4) != 0,
			CreatedAt:      now.AddDate(0, 0, -(30 + g.rng.Intn(1066))),
			DiscontinuedAt: discontinued,
		})
	}
	return products
}

var (
	loyaltyTiers        = []string{"Bronze", "Silver", "Gold", "Platinum"}
	acquisitionChannels = []string{"Online", "Store", "Referral", "Social Media", "Email"}
)

// Customers generates the customer dimension. Lifetime value grows with
// account age.
func (g *Generator) Customers() []*domain.Customer {
	now := g.cfg.EndDate
	customers := make([]*domain.Customer, 0, g.cfg.CustomerCount)

	for i := 0; i < g.cfg.CustomerCount; i++ {
		createdAt := now.AddDate(0, 0, -(1 + g.rng.Intn(1095)))
		age := now.Sub(createdAt).Hours() / 24

		ltv := g.uniform(50, 500)
		if age > 365 {
			ltv *= 1.5
		}
		if age > 730 {
			ltv *= 1.3
		}

		customers = append(customers, &domain.Customer{
			CustomerID:         fmt.Sprintf("cust_%04d", i+1),
			CreatedAt:          createdAt,
			LifetimeValue:      ltv,
			LoyaltyTier:        g.faker.RandomString(loyaltyTiers),
			EmailOptIn:         g.rng.Intn(3) != 0,
			AcquisitionChannel: g.faker.RandomString(acquisitionChannels),
		})
	}
	return customers
}

// CalendarEvents generates one row per day of the range. Days inside a
// known retail window carry that event and the seasonal flag; every other
// day is an explicit non-event row, which downstream baselines rely on.
func (g *Generator) CalendarEvents() []*domain.CalendarEvent {
	var events []*domain.CalendarEvent

	for d := g.cfg.StartDate; !d.After(g.cfg.EndDate); d = d.AddDate(0, 0, 1) {
		name, category := eventFor(d)
		events = append(events, &domain.CalendarEvent{
			Date:              d,
			EventName:         name,
			EventCategory:     category,
			SeasonalEventFlag: category != "None",
		})
	}
	return events
}

func eventFor(d time.Time) (name, category string) {
	month, day := d.Month(), d.Day()
	switch {
	case month == time.November && day >= 24 && day <= 30:
		return "Black Friday Week", "Holiday"
	case month == time.December:
		return "Holiday Season", "Holiday"
	case month == time.February && day >= 10 && day <= 16:
		return "Valentine's Day", "Holiday"
	case month == time.May && day >= 8 && day <= 14:
		return "Mother's Day", "Holiday"
	case month == time.June || month == time.July || month == time.August:
		return "Summer Season", "Seasonal"
	default:
		return "Regular Day", "None"
	}
}
