package catalog

import "errors"

var (
	// -- Authentication/Authorization --
	ErrUnauthenticated = errors.New("caller not authenticated")
	ErrNotProductOwner = errors.New("caller is not the product owner")

	// -- Validation & Input --
	ErrInvalidProductType = errors.New("product type must be greater than zero")
	ErrInvalidQuantity    = errors.New("quantity must be greater than zero")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrUnknownTransaction = errors.New("unknown exchange transaction id")

	// -- Resource State --
	ErrProductNotFound     = errors.New("product not found")
	ErrProductExists       = errors.New("product type already in use")
	ErrSaleNotFound        = errors.New("sale not found")
	ErrSaleAlreadyComplete = errors.New("sale already reconciled")
)
