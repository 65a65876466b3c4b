package models

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type PaymentMethodType string

const (
	PaymentMethodCard   PaymentMethodType = "card"
	PaymentMethodPaypal PaymentMethodType = "paypal"
	PaymentMethodWallet PaymentMethodType = "wallet"
)

// ShippingAddress is the checkout step-1 form.
type ShippingAddress struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Address1  string `json:"address1" validate:"required,min=5"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zip       string `json:"zip" validate:"required,min=5"`
}

// PaymentCard carries the raw payment-step fields. Validated for UX only;
// nothing is ever charged.
type PaymentCard struct {
	Number string `json:"number"`
	Month  string `json:"month"`
	Year   string `json:"year"`
	CVV    string `json:"cvv"`
}

// OrderLine is the reduced totals snapshot stored on an order.
type OrderLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// OrderTotals is the cost breakdown frozen at placement.
type OrderTotals struct {
	Items         []OrderLine `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	CouponApplied bool        `json:"couponApplied"`
}

// Order is created at checkout completion and immutable thereafter.
type Order struct {
	ID       string          `json:"id"`
	PlacedAt time.Time       `json:"placedAt"`
	Status   OrderStatus     `json:"status"`
	Totals   OrderTotals     `json:"totals"`
	Shipping ShippingAddress `json:"shipping"`
}
