package catalog

import "time"

type SaleStatus string

const (
	SaleStatusIncomplete SaleStatus = "INCOMPLETE"
	SaleStatusComplete   SaleStatus = "COMPLETE"
)

// Product is a retailer's catalog entry, keyed by an external product-type
// code rather than a minted sequential id.
type Product struct {
	ProductType uint64
	WheatType   string
	Brand       string
	Origin      string
	Description string
	Price       uint64
	Stock       uint64
	OwnerID     uint64
	CreatedAt   time.Time
}

// Sale is a customer purchase against a product. It starts incomplete and is
// later reconciled against upstream exchange transactions, whose identifiers
// land in TransactionIDs exactly once.
type Sale struct {
	ID             uint64
	ProductType    uint64
	Quantity       uint64
	TransactionIDs []uint64
	Status         SaleStatus
	CustomerID     uint64
	RetailerID     uint64
	CreatedAt      time.Time
}

// ProductUpdate carries the optional fields of a partial update. A nil field
// means "leave unchanged"; the zero-as-sentinel rule of the public API is
// translated into these pointers at the transport edge.
type ProductUpdate struct {
	WheatType   *string
	Brand       *string
	Origin      *string
	Description *string
	Price       *uint64
	Stock       *uint64
}
