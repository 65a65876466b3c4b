package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmart-io/store/configs"
	"webmart-io/store/pkg/catalog"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/services"
)

func newCheckoutFixture(t *testing.T) (*Checkout, services.CartService) {
	t.Helper()
	cat := catalog.Seed()
	store := kv.NewMemory()
	cart := services.NewCartService(store, cat)
	pricing := services.NewPricingService(cat, configs.DefaultPricing())
	orders := services.NewOrderService(store)
	return NewCheckout(cart, pricing, orders), cart
}

func fillValidCheckout(c *Checkout) {
	c.Address = models.ShippingAddress{
		FirstName: "Maya",
		LastName:  "Chen",
		Email:     "maya.chen@example.com",
		Address1:  "12 Harbor Street",
		City:      "Portland",
		State:     "OR",
		Zip:       "97201",
	}
	c.Card = models.PaymentCard{Number: "4242424242424242", Month: "12", Year: "2030", CVV: "123"}
}

func TestCheckoutBlocksOnInvalidShipping(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 1))

	err := c.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, CheckoutStepShipping, c.Step())
}

func TestCheckoutBlocksOnInvalidCard(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 1))
	fillValidCheckout(c)
	c.Card.Number = "1234"

	require.NoError(t, c.Next(ctx))
	err := c.Next(ctx)
	require.Error(t, err)
	assert.Equal(t, CheckoutStepPayment, c.Step())
}

func TestCheckoutNonCardMethodSkipsCardValidation(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 1))
	fillValidCheckout(c)
	c.Method = models.PaymentMethodPaypal
	c.Card = models.PaymentCard{}

	require.NoError(t, c.Next(ctx))
	require.NoError(t, c.Next(ctx))
	assert.Equal(t, CheckoutStepReview, c.Step())
}

func TestCheckoutReviewRequiresItems(t *testing.T) {
	c, _ := newCheckoutFixture(t)
	ctx := context.Background()
	fillValidCheckout(c)

	require.NoError(t, c.Next(ctx))
	require.NoError(t, c.Next(ctx))
	err := c.Next(ctx)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
	assert.Equal(t, CheckoutStepReview, c.Step())
}

func TestCheckoutTotalsReflectCoupon(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 2))

	c.Coupon = "WEBMART10"
	totals := c.Totals(ctx)
	assert.Equal(t, 160.0, totals.Discount)
	assert.Equal(t, 1554.0, totals.Total)
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 2))
	fillValidCheckout(c)

	order, err := c.PlaceOrder(ctx)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 1714.0, order.Totals.Total)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Empty(t, cart.Cart(ctx).Items)
	assert.Equal(t, CheckoutStepConfirm, c.Step())
	assert.Equal(t, order, c.PlacedOrder())
}

func TestPlaceOrderRevalidatesEveryStep(t *testing.T) {
	c, cart := newCheckoutFixture(t)
	ctx := context.Background()
	require.NoError(t, cart.AddToCart(ctx, "p001", 1))
	fillValidCheckout(c)

	// Walk forward, then break the shipping data before finalizing.
	require.NoError(t, c.Next(ctx))
	require.NoError(t, c.Next(ctx))
	c.Address.Email = "broken"

	_, err := c.PlaceOrder(ctx)
	require.Error(t, err)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, CheckoutStepShipping, stepErr.Step)
	assert.NotEmpty(t, cart.Cart(ctx).Items)
	assert.Nil(t, c.PlacedOrder())
}
