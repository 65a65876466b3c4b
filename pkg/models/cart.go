package models

// CartLine is one product+quantity entry; unique per product id.
type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty" validate:"gte=1,lte=99"`
}

// Cart preserves insertion order of its lines.
type Cart struct {
	Items []CartLine `json:"items"`
}

// Wishlist and Compare persist as ordered id sets.
type IDSet struct {
	IDs []string `json:"ids"`
}

// TotalsLine is a cart line resolved against the catalog.
type TotalsLine struct {
	Product   *Product `json:"product"`
	Qty       int      `json:"qty"`
	LineTotal float64  `json:"lineTotal"`
}

// Totals is derived on demand and never persisted.
type Totals struct {
	Items         []TotalsLine `json:"items"`
	Subtotal      float64      `json:"subtotal"`
	Shipping      float64      `json:"shipping"`
	Tax           float64      `json:"tax"`
	Discount      float64      `json:"discount"`
	Total         float64      `json:"total"`
	CouponApplied bool         `json:"couponApplied"`
}
