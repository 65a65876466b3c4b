package services

import (
	"context"

	"webmart-io/store/pkg/models"
)

// CartService owns the cart, wishlist, compare, and recently-viewed
// collections. Every mutation persists the new state and notifies the
// affected collection's subscribers.
type CartService interface {
	Cart(ctx context.Context) models.Cart
	CartCount(ctx context.Context) int
	AddToCart(ctx context.Context, productID string, qty int) error
	UpdateQty(ctx context.Context, productID string, qty int)
	RemoveFromCart(ctx context.Context, productID string)
	ClearCart(ctx context.Context)

	Wishlist(ctx context.Context) []string
	IsWishlisted(ctx context.Context, productID string) bool
	ToggleWishlist(ctx context.Context, productID string) bool

	Compare(ctx context.Context) []string
	ToggleCompare(ctx context.Context, productID string) ([]string, error)

	AddRecent(ctx context.Context, productID string)
	Recents(ctx context.Context) []models.Product

	SubscribeCart(fn func(models.Cart))
	SubscribeWishlist(fn func([]string))
	SubscribeCompare(fn func([]string))
}

// PricingService derives cost breakdowns; computation is pure and
// reproducible for a given cart snapshot.
type PricingService interface {
	ComputeTotals(ctx context.Context, cart models.Cart, couponCode string) models.Totals
	SuggestPrice(category string, condition models.ConditionType) (low, high float64)
}

// OrderService persists placed orders, most recent first.
type OrderService interface {
	PlaceOrder(ctx context.Context, totals models.Totals, address models.ShippingAddress) (*models.Order, error)
	Orders(ctx context.Context) []models.Order
}

// ListingService persists published listings and the sell-wizard draft.
type ListingService interface {
	Publish(ctx context.Context, nl models.NewListing, sellerName string) (*models.Listing, error)
	Listings(ctx context.Context) []models.Listing
	DeleteListing(ctx context.Context, id string) error

	SaveDraft(ctx context.Context, draft models.Draft) error
	LoadDraft(ctx context.Context) (models.Draft, bool)
	ClearDraft(ctx context.Context)
}

// MessageService owns buyer/seller conversation threads.
type MessageService interface {
	Threads(ctx context.Context) []models.Thread
	NewThread(ctx context.Context, title, productID, opener string) *models.Thread
	Send(ctx context.Context, threadID, from, text string) error
	Archive(ctx context.Context, threadID string) error
	SeedIfEmpty(ctx context.Context)
}

// AuthService is the demo sign-in: any well-formed email is accepted.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context)
	Current(ctx context.Context) *models.User
	Subscribe(fn func(*models.User))
}
