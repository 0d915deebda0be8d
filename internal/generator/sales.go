package generator

import (
	"fmt"
	"time"

	"tailwagg-analytics/internal/domain"
)

// holidayMultiplier scales daily demand by retail season, with a
// year-over-year cycle so some years run hotter than others.
func (g *Generator) holidayMultiplier(d time.Time) float64 {
	yearFactor := 0.8 + float64(d.Year()%3)*0.2
	month, day := d.Month(), d.Day()

	switch {
	case month == time.November && day >= 24 && day <= 30:
		return g.uniform(2.5, 4.0) * yearFactor
	case month == time.December && day <= 15:
		return g.uniform(1.8, 2.5) * yearFactor
	case month == time.December:
		return g.uniform(2.0, 3.0) * yearFactor
	case month == time.February && day >= 10 && day <= 16:
		return g.uniform(1.3, 1.8) * g.uniform(0.7, 1.3) * yearFactor
	case month == time.May && day >= 8 && day <= 14:
		return g.uniform(1.2, 1.6) * g.uniform(0.8, 1.2) * yearFactor
	case month == time.June || month == time.July || month == time.August:
		return g.uniform(1.1, 1.4) * g.uniform(0.9, 1.3) * yearFactor
	default:
		return g.uniform(0.8, 1.2) * yearFactor
	}
}

// weeklyVariation models the business cycle across the year.
func (g *Generator) weeklyVariation(d time.Time) float64 {
	_, week := d.ISOWeek()
	switch {
	case week <= 8:
		return g.uniform(0.7, 0.9)
	case week <= 20:
		return g.uniform(0.9, 1.1)
	case week <= 32:
		return g.uniform(1.0, 1.3)
	case week <= 44:
		return g.uniform(0.8, 1.0)
	default:
		return g.uniform(1.1, 1.5)
	}
}

// promoImpact boosts demand for each active promotion, stacking with
// diminishing returns and capped at 2.5x.
func (g *Generator) promoImpact(active []*domain.Promo) float64 {
	if len(active) == 0 {
		return 1.0
	}

	total := 1.0
	for _, p := range active {
		var impact float64
		switch p.PromoType {
		case "discount":
			impact = g.uniform(1.1, 1.4)
		case "BOGO":
			impact = g.uniform(1.3, 1.8)
		case "bundle":
			impact = g.uniform(1.2, 1.6)
		case "coupon":
			impact = g.uniform(1.05, 1.25)
		default:
			impact = 1.0
		}
		total += (impact - 1.0) * 0.7
	}
	if total > 2.5 {
		total = 2.5
	}
	return total
}

// basePrice draws a unit price from the category's range.
func (g *Generator) basePrice(categoryID string) float64 {
	switch categoryID {
	case "treats":
		return g.uniform(3, 25)
	case "toys":
		return g.uniform(8, 50)
	case "wellness":
		return g.uniform(15, 80)
	default:
		return g.uniform(5, 100)
	}
}

// SalesLines generates order lines for every day of the configured range.
// Demand varies by weekday, season and active promotions.
func (g *Generator) SalesLines(
	products []*domain.Product,
	customers []*domain.Customer,
	channels []*domain.Channel,
	locations []*domain.Location,
	promos []*domain.Promo,
) []*domain.SalesLine {
	var active []*domain.Product
	for _, p := range products {
		if p.IsActive {
			active = append(active, p)
		}
	}

	categoryByProduct := make(map[string]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ProductID] = p.CategoryID
	}

	promosByDate := make(map[time.Time][]*domain.Promo)
	for _, p := range promos {
		for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
			promosByDate[d] = append(promosByDate[d], p)
		}
	}

	var sales []*domain.SalesLine
	orderCounter := 1

	for d := g.cfg.StartDate; !d.After(g.cfg.EndDate); d = d.AddDate(0, 0, 1) {
		baseOrders := 50.0
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			baseOrders = 30.0
		}

		activePromos := promosByDate[d]
		dailyOrders := int(baseOrders *
			g.holidayMultiplier(d) *
			g.weeklyVariation(d) *
			g.promoImpact(activePromos) *
			g.uniform(0.7, 1.3))
		if dailyOrders < 1 {
			dailyOrders = 1
		}

		hasBOGO := false
		for _, p := range activePromos {
			if p.PromoType == "BOGO" {
				hasBOGO = true
				break
			}
		}

		for o := 0; o < dailyOrders; o++ {
			orderID := fmt.Sprintf("order_%06d", orderCounter)
			orderCounter++

			customer := customers[g.rng.Intn(len(customers))]
			channel := channels[g.rng.Intn(len(channels))]
			location := locations[g.rng.Intn(len(locations))]

			items := []int{1, 2, 3, 4, 5}[g.weightedChoice([]int{20, 30, 30, 15, 5})]
			if len(activePromos) > 0 {
				items += []int{0, 1, 2}[g.weightedChoice([]int{60, 30, 10})]
				if items > 5 {
					items = 5
				}
			}

			for item := 0; item < items; item++ {
				product := active[g.rng.Intn(len(active))]

				quantity := []int{1, 2, 3}[g.weightedChoice([]int{60, 30, 10})]
				if hasBOGO && g.rng.Float64() < 0.3 && quantity < 3 {
					quantity++
				}

				unitPrice := g.basePrice(categoryByProduct[product.ProductID])

				var discount float64
				var promoID *string
				discountChance := 0.2
				if len(activePromos) > 0 {
					discountChance = 0.6
				}
				if g.rng.Float64() < discountChance {
					if len(activePromos) > 0 {
						chosen := activePromos[g.rng.Intn(len(activePromos))]
						promoID = &chosen.PromoID
						switch chosen.PromoType {
						case "discount":
							discount = unitPrice * g.uniform(0.1, 0.5)
						case "BOGO":
							if quantity >= 2 {
								discount = unitPrice * 0.5
							}
						case "bundle":
							discount = unitPrice * g.uniform(0.15, 0.3)
						case "coupon":
							discount = unitPrice * g.uniform(0.05, 0.2)
						}
					} else {
						discount = unitPrice * g.uniform(0.1, 0.3)
					}
				}

				timestamp := d.Add(
					time.Duration(8+g.rng.Intn(15))*time.Hour +
						time.Duration(g.rng.Intn(60))*time.Minute)

				sales = append(sales, &domain.SalesLine{
					OrderLineID:    fmt.Sprintf("%s_%d", orderID, item+1),
					OrderID:        orderID,
					ProductID:      product.ProductID,
					CustomerID:     customer.CustomerID,
					ChannelID:      channel.ChannelID,
					LocationID:     location.LocationID,
					Quantity:       quantity,
					UnitPrice:      unitPrice,
					DiscountAmount: discount,
					PromoID:        promoID,
					COGS:           unitPrice * g.uniform(0.6, 0.8),
					Timestamp:      timestamp,
					IsReturned:     g.rng.Float64() < g.returnRate(d, categoryByProduct[product.ProductID]),
				})
			}
		}
	}

	return sales
}

// returnRate varies by season (holiday gift returns) and category.
func (g *Generator) returnRate(d time.Time, categoryID string) float64 {
	rate := 0.05
	switch d.Month() {
	case time.December:
		rate = 0.08
	case time.January:
		rate = 0.12
	}
	if categoryID == "accessories" || categoryID == "toys" {
		rate *= 1.5
	}
	return rate
}

var returnReasons = []string{
	"Defective", "Wrong Size", "Not as Described", "Changed Mind", "Late Delivery",
}

// ReturnsFrom derives return fact rows from sales lines flagged as
// returned, so every return references an existing order line.
func (g *Generator) ReturnsFrom(sales []*domain.SalesLine) []*domain.ReturnLine {
	var returns []*domain.ReturnLine
	counter := 1

	for _, line := range sales {
		if !line.IsReturned {
			continue
		}
		refund := line.UnitPrice*float64(line.Quantity) - line.DiscountAmount
		if refund < 0 {
			refund = 0
		}
		returns = append(returns, &domain.ReturnLine{
			ReturnID:     fmt.Sprintf("return_%07d", counter),
			OrderLineID:  line.OrderLineID,
			ProductID:    line.ProductID,
			ReturnReason: g.faker.RandomString(returnReasons),
			Timestamp:    line.Timestamp.AddDate(0, 0, 1+g.rng.Intn(30)),
			RefundAmount: refund,
		})
		counter++
	}
	return returns
}
