package services

import (
	"github.com/pkg/errors"
)

// Storage keys, versioned like the original browser records.
const (
	CART_KEY     = "webmart_cart_v1"
	WISHLIST_KEY = "webmart_wishlist_v1"
	COMPARE_KEY  = "webmart_compare_v1"
	RECENTS_KEY  = "webmart_recent_v1"
	ORDERS_KEY   = "webmart_orders_v1"
	LISTINGS_KEY = "webmart_listings_v1"
	DRAFT_KEY    = "webmart_sell_draft_v1"
	MSG_KEY      = "webmart_msgs_v1"
	AUTH_KEY     = "webmart_auth_v1"
)

const (
	CART_MIN_QTY = 1
	CART_MAX_QTY = 99

	WISHLIST_CAP = 100
	COMPARE_CAP  = 4
	RECENTS_CAP  = 12

	PHOTO_MIN = 1
	PHOTO_MAX = 8

	MIN_PASSWORD_LENGTH = 8
)

// Reason-coded outcomes. Capacity and reference failures are signaled, not
// fatal.
var (
	ErrUnknownProduct = errors.New("product not found in catalog")
	ErrCompareFull    = errors.New("comparison set is full")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotFound       = errors.New("record not found")
	ErrBadCredentials = errors.New("invalid email or password")
)

// observers is a registration-ordered synchronous subscriber list. Each
// mutation publishes the new collection snapshot, not a bare signal, so
// listeners never have to re-query.
type observers[T any] struct {
	fns []func(T)
}

func (o *observers[T]) subscribe(fn func(T)) {
	o.fns = append(o.fns, fn)
}

func (o *observers[T]) emit(snapshot T) {
	for _, fn := range o.fns {
		fn(snapshot)
	}
}
