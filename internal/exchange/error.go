package exchange

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUnauthenticated = errors.New("caller not authenticated")
	ErrNotOrderOwner   = errors.New("caller is not the order owner")
	ErrNotOfferOwner   = errors.New("caller is not the offer owner")

	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("price per kg must be greater than zero")

	// -- Resource State --
	ErrOrderNotFound      = errors.New("order not found")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrOrderNotInProgress = errors.New("order is not in progress")
	ErrOfferNotInProgress = errors.New("offer is not in progress")
	ErrOfferOrderMismatch = errors.New("offer does not reference this order")
)
