package services

import (
	"context"

	"webmart-io/store/pkg/catalog"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// CartServiceImpl implements the CartService interface over the durable
// store scope.
type CartServiceImpl struct {
	store   kv.Store
	catalog *catalog.Catalog

	cartObs     observers[models.Cart]
	wishlistObs observers[[]string]
	compareObs  observers[[]string]
}

// NewCartService creates a new instance of CartService.
func NewCartService(store kv.Store, cat *catalog.Catalog) CartService {
	return &CartServiceImpl{store: store, catalog: cat}
}

func (cs *CartServiceImpl) Cart(ctx context.Context) models.Cart {
	var cart models.Cart
	if !cs.store.Get(ctx, CART_KEY, &cart) {
		return models.Cart{Items: []models.CartLine{}}
	}
	if cart.Items == nil {
		cart.Items = []models.CartLine{}
	}
	return cart
}

// CartCount sums quantities across lines.
func (cs *CartServiceImpl) CartCount(ctx context.Context) int {
	total := 0
	for _, line := range cs.Cart(ctx).Items {
		total += line.Qty
	}
	return total
}

// AddToCart upserts a line: an existing product increments its quantity,
// clamped after addition; unknown products are a signaled no-op.
func (cs *CartServiceImpl) AddToCart(ctx context.Context, productID string, qty int) error {
	if cs.catalog.ByID(productID) == nil {
		return ErrUnknownProduct
	}
	cart := cs.Cart(ctx)
	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Qty = util.Clamp(cart.Items[i].Qty+qty, CART_MIN_QTY, CART_MAX_QTY)
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartLine{
			ProductID: productID,
			Qty:       util.Clamp(qty, CART_MIN_QTY, CART_MAX_QTY),
		})
	}
	cs.setCart(ctx, cart)
	return nil
}

// UpdateQty clamps into [1,99]; absent lines are a no-op.
func (cs *CartServiceImpl) UpdateQty(ctx context.Context, productID string, qty int) {
	cart := cs.Cart(ctx)
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Qty = util.Clamp(qty, CART_MIN_QTY, CART_MAX_QTY)
			cs.setCart(ctx, cart)
			return
		}
	}
}

func (cs *CartServiceImpl) RemoveFromCart(ctx context.Context, productID string) {
	cart := cs.Cart(ctx)
	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept
	cs.setCart(ctx, cart)
}

func (cs *CartServiceImpl) ClearCart(ctx context.Context) {
	cs.setCart(ctx, models.Cart{Items: []models.CartLine{}})
}

func (cs *CartServiceImpl) setCart(ctx context.Context, cart models.Cart) {
	if err := cs.store.Set(ctx, CART_KEY, cart); err != nil {
		util.LogError("failed to persist cart", err)
	}
	cs.cartObs.emit(cart)
}

func (cs *CartServiceImpl) Wishlist(ctx context.Context) []string {
	return cs.ids(ctx, WISHLIST_KEY)
}

func (cs *CartServiceImpl) IsWishlisted(ctx context.Context, productID string) bool {
	for _, id := range cs.Wishlist(ctx) {
		if id == productID {
			return true
		}
	}
	return false
}

// ToggleWishlist removes a present id, otherwise inserts it at the front,
// de-duplicates, and truncates to the cap. Returns the new membership.
func (cs *CartServiceImpl) ToggleWishlist(ctx context.Context, productID string) bool {
	ids := cs.Wishlist(ctx)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			cs.setIDs(ctx, WISHLIST_KEY, ids)
			cs.wishlistObs.emit(ids)
			return false
		}
	}
	ids = dedupe(append([]string{productID}, ids...))
	if len(ids) > WISHLIST_CAP {
		ids = ids[:WISHLIST_CAP]
	}
	cs.setIDs(ctx, WISHLIST_KEY, ids)
	cs.wishlistObs.emit(ids)
	return true
}

func (cs *CartServiceImpl) Compare(ctx context.Context) []string {
	return cs.ids(ctx, COMPARE_KEY)
}

// ToggleCompare removes a present id; adding past the cap rejects the
// operation and leaves the set unchanged, signaling ErrCompareFull.
func (cs *CartServiceImpl) ToggleCompare(ctx context.Context, productID string) ([]string, error) {
	ids := cs.Compare(ctx)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			cs.setIDs(ctx, COMPARE_KEY, ids)
			cs.compareObs.emit(ids)
			return ids, nil
		}
	}
	if len(ids) >= COMPARE_CAP {
		return ids, ErrCompareFull
	}
	ids = append(ids, productID)
	cs.setIDs(ctx, COMPARE_KEY, ids)
	cs.compareObs.emit(ids)
	return ids, nil
}

// AddRecent tracks recently-viewed products, most recent first.
func (cs *CartServiceImpl) AddRecent(ctx context.Context, productID string) {
	ids := dedupe(append([]string{productID}, cs.ids(ctx, RECENTS_KEY)...))
	if len(ids) > RECENTS_CAP {
		ids = ids[:RECENTS_CAP]
	}
	cs.setIDs(ctx, RECENTS_KEY, ids)
}

// Recents resolves the recently-viewed ids, dropping any that no longer
// resolve against the catalog.
func (cs *CartServiceImpl) Recents(ctx context.Context) []models.Product {
	var out []models.Product
	for _, id := range cs.ids(ctx, RECENTS_KEY) {
		if p := cs.catalog.ByID(id); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (cs *CartServiceImpl) SubscribeCart(fn func(models.Cart))  { cs.cartObs.subscribe(fn) }
func (cs *CartServiceImpl) SubscribeWishlist(fn func([]string)) { cs.wishlistObs.subscribe(fn) }
func (cs *CartServiceImpl) SubscribeCompare(fn func([]string))  { cs.compareObs.subscribe(fn) }

func (cs *CartServiceImpl) ids(ctx context.Context, key string) []string {
	var set models.IDSet
	if !cs.store.Get(ctx, key, &set) || set.IDs == nil {
		return []string{}
	}
	return set.IDs
}

func (cs *CartServiceImpl) setIDs(ctx context.Context, key string, ids []string) {
	if err := cs.store.Set(ctx, key, models.IDSet{IDs: ids}); err != nil {
		util.LogError("failed to persist id set "+key, err)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
