package exchange

import "time"

type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Order is a processor's standing request for a quantity of wheat.
type Order struct {
	ID         uint64
	QuantityKg uint64
	Status     Status
	OwnerID    uint64
	CreatedAt  time.Time
}

// Offer is a farmer's proposal against a specific order.
type Offer struct {
	ID          uint64
	OrderID     uint64
	HarvestDate string
	PricePerKg  uint64
	Origin      string
	Status      Status
	OwnerID     uint64
	CreatedAt   time.Time
}

// Transaction is the immutable record appended when an order's owner accepts
// a matching offer. An order gets at most one transaction, ever.
type Transaction struct {
	ID          uint64
	OrderID     uint64
	OfferID     uint64
	FarmerID    uint64
	ProcessorID uint64
	CreatedAt   time.Time
}
