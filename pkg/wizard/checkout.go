package wizard

import (
	"context"

	creditcard "github.com/durango/go-credit-card"
	"github.com/pkg/errors"

	"webmart-io/store/internal/validators"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/services"
)

// Checkout step indexes.
const (
	CheckoutStepShipping = 1
	CheckoutStepPayment  = 2
	CheckoutStepReview   = 3
	CheckoutStepConfirm  = 4

	CheckoutSteps = 4
)

// Checkout drives the 4-step checkout flow. Step 4 is a soft terminal:
// after a placed order the machine simply stays there.
type Checkout struct {
	machine *Machine
	cart    services.CartService
	pricing services.PricingService
	orders  services.OrderService

	Address models.ShippingAddress
	Method  models.PaymentMethodType
	Card    models.PaymentCard
	Coupon  string

	placed *models.Order
}

// NewCheckout wires the checkout wizard over the given services.
func NewCheckout(cart services.CartService, pricing services.PricingService, orders services.OrderService) *Checkout {
	c := &Checkout{
		cart:    cart,
		pricing: pricing,
		orders:  orders,
		Method:  models.PaymentMethodCard,
	}
	c.machine = NewMachine(CheckoutSteps, map[int]Gate{
		CheckoutStepShipping: c.gateShipping,
		CheckoutStepPayment:  c.gatePayment,
		CheckoutStepReview:   c.gateReview,
	})
	return c
}

func (c *Checkout) Step() int                               { return c.machine.Step() }
func (c *Checkout) Next(ctx context.Context) error          { return c.machine.Next(ctx) }
func (c *Checkout) Prev()                                   { c.machine.Prev() }
func (c *Checkout) JumpTo(ctx context.Context, s int) error { return c.machine.JumpTo(ctx, s) }

// PlacedOrder reports the confirmation record after a successful finalize.
func (c *Checkout) PlacedOrder() *models.Order { return c.placed }

// Totals recomputes the current breakdown for the review panel.
func (c *Checkout) Totals(ctx context.Context) models.Totals {
	return c.pricing.ComputeTotals(ctx, c.cart.Cart(ctx), c.Coupon)
}

func (c *Checkout) gateShipping(_ context.Context) error {
	if err := validators.Validate.Struct(&c.Address); err != nil {
		return errors.Wrap(err, "fix shipping info")
	}
	return nil
}

// gatePayment validates card fields only when the card method is selected.
// Other methods are pass-through placeholders.
func (c *Checkout) gatePayment(_ context.Context) error {
	if c.Method != models.PaymentMethodCard {
		return nil
	}
	card := creditcard.Card{
		Number:  c.Card.Number,
		Cvv:     c.Card.CVV,
		Month:   c.Card.Month,
		Year:    c.Card.Year,
		Company: creditcard.Company{},
	}
	if err := card.Validate(true); err != nil {
		return errors.Wrap(err, "check payment fields")
	}
	return nil
}

func (c *Checkout) gateReview(ctx context.Context) error {
	if len(c.Totals(ctx).Items) == 0 {
		return services.ErrEmptyCart
	}
	return nil
}

// PlaceOrder finalizes the checkout: every step's gate is re-validated,
// the order is created from a fresh totals computation, the cart is
// cleared, and the machine lands on the confirmation step.
func (c *Checkout) PlaceOrder(ctx context.Context) (*models.Order, error) {
	if err := c.machine.ValidateAll(ctx); err != nil {
		return nil, err
	}
	order, err := c.orders.PlaceOrder(ctx, c.Totals(ctx), c.Address)
	if err != nil {
		return nil, err
	}
	c.cart.ClearCart(ctx)
	c.placed = order
	c.machine.step = CheckoutStepConfirm
	return order, nil
}
