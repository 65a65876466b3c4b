package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"webmart-io/store/internal/validators"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// OrderServiceImpl implements the OrderService interface.
type OrderServiceImpl struct {
	store kv.Store
	now   func() time.Time
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(store kv.Store) OrderService {
	return &OrderServiceImpl{store: store, now: time.Now}
}

// PlaceOrder freezes the totals into a new confirmed order and prepends it
// to the order list. The cart snapshot is reduced to product id + qty.
func (os *OrderServiceImpl) PlaceOrder(ctx context.Context, totals models.Totals, address models.ShippingAddress) (*models.Order, error) {
	if len(totals.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validators.Validate.Struct(&address); err != nil {
		return nil, errors.Wrap(err, "invalid shipping address")
	}

	lines := make([]models.OrderLine, 0, len(totals.Items))
	for _, it := range totals.Items {
		lines = append(lines, models.OrderLine{ProductID: it.Product.ID, Qty: it.Qty})
	}

	order := models.Order{
		ID:       util.NewID("ord"),
		PlacedAt: os.now(),
		Status:   models.OrderStatusConfirmed,
		Totals: models.OrderTotals{
			Items:         lines,
			Subtotal:      totals.Subtotal,
			Shipping:      totals.Shipping,
			Tax:           totals.Tax,
			Discount:      totals.Discount,
			Total:         totals.Total,
			CouponApplied: totals.CouponApplied,
		},
		Shipping: address,
	}

	all := append([]models.Order{order}, os.Orders(ctx)...)
	if err := os.store.Set(ctx, ORDERS_KEY, all); err != nil {
		return nil, errors.Wrap(err, "failed to persist order")
	}
	return &order, nil
}

// Orders returns placed orders, most recent first.
func (os *OrderServiceImpl) Orders(ctx context.Context) []models.Order {
	var orders []models.Order
	if !os.store.Get(ctx, ORDERS_KEY, &orders) {
		return []models.Order{}
	}
	return orders
}
