package services

import (
	"context"
	"strings"

	"webmart-io/store/configs"
	"webmart-io/store/pkg/catalog"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// pricingService implements PricingService against injected pricing rules.
type pricingService struct {
	catalog *catalog.Catalog
	pricing configs.Pricing
}

// NewPricingService creates a new instance of PricingService.
func NewPricingService(cat *catalog.Catalog, pricing configs.Pricing) PricingService {
	return &pricingService{catalog: cat, pricing: pricing}
}

// ComputeTotals derives the cost breakdown for a cart snapshot. Lines whose
// product no longer resolves are dropped. Tax and discount are rounded
// independently before entering the total; the total never goes negative.
func (ps *pricingService) ComputeTotals(_ context.Context, cart models.Cart, couponCode string) models.Totals {
	totals := models.Totals{Items: []models.TotalsLine{}}

	for _, line := range cart.Items {
		p := ps.catalog.ByID(line.ProductID)
		if p == nil {
			continue
		}
		lineTotal := p.Price * float64(line.Qty)
		totals.Items = append(totals.Items, models.TotalsLine{Product: p, Qty: line.Qty, LineTotal: lineTotal})
		totals.Subtotal += lineTotal
	}

	if totals.Subtotal <= ps.pricing.FreeShippingThreshold && len(totals.Items) > 0 {
		totals.Shipping = ps.pricing.FlatShippingFee
	}
	totals.Tax = util.RoundCurrency(totals.Subtotal * ps.pricing.TaxRate)

	coupon := strings.ToUpper(strings.TrimSpace(couponCode))
	if rate, ok := ps.pricing.Coupons[coupon]; ok {
		totals.Discount = util.RoundCurrency(totals.Subtotal * rate)
	}
	totals.CouponApplied = totals.Discount > 0

	totals.Total = totals.Subtotal + totals.Shipping + totals.Tax - totals.Discount
	if totals.Total < 0 {
		totals.Total = 0
	}
	return totals
}

// SuggestPrice gives the sell wizard a quick heuristic range per category
// and condition.
func (ps *pricingService) SuggestPrice(category string, condition models.ConditionType) (low, high float64) {
	base, ok := map[string]float64{
		"electronics": 380, "fashion": 90, "home": 260, "sports": 420, "toys": 140,
		"books": 55, "auto": 160, "beauty": 190, "jewelry": 240, "collectibles": 310,
	}[category]
	if !ok {
		base = 200
	}
	mult := 0.8
	switch condition {
	case models.ConditionNew:
		mult = 1.15
	case models.ConditionLikeNew:
		mult = 1.05
	case models.ConditionGood:
		mult = 0.92
	}
	low = util.RoundCurrency(base * mult * 0.85)
	high = util.RoundCurrency(base * mult * 1.15)
	return low, high
}
