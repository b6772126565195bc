package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates checkout was attempted without a
	// signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart indicates checkout was attempted with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCheckoutInFlight indicates a submission is already pending
	// for this cart.
	ErrCheckoutInFlight = errors.New("checkout already in flight")
)
