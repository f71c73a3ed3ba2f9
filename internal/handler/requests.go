package handler

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateOrderRequest is the payload for POST /orders
type CreateOrderRequest struct {
	QuantityKg uint64 `json:"quantity_kg" validate:"required,gt=0"`
}

// CreateOfferRequest is the payload for POST /offers
type CreateOfferRequest struct {
	OrderID     uint64 `json:"order_id" validate:"required"`
	HarvestDate string `json:"harvest_date" validate:"required"`
	PricePerKg  uint64 `json:"price_per_kg" validate:"required,gt=0"`
	Origin      string `json:"origin" validate:"required"`
}

// AcceptOfferRequest is the payload for POST /orders/:id/accept
type AcceptOfferRequest struct {
	OfferID uint64 `json:"offer_id" validate:"required"`
}

// CreateProductRequest is the payload for POST /products
type CreateProductRequest struct {
	ProductType uint64 `json:"product_type" validate:"required,gt=0"`
	WheatType   string `json:"wheat_type"`
	Brand       string `json:"brand"`
	Origin      string `json:"origin"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
	Stock       uint64 `json:"stock"`
}

// UpdateProductRequest is the payload for PATCH /products/:type. An omitted,
// empty or zero field leaves the stored value unchanged, which also means an
// update cannot set a field back to zero. That asymmetry is part of the
// public contract.
type UpdateProductRequest struct {
	WheatType   *string `json:"wheat_type"`
	Brand       *string `json:"brand"`
	Origin      *string `json:"origin"`
	Description *string `json:"description"`
	Price       *uint64 `json:"price"`
	Stock       *uint64 `json:"stock"`
}

// PurchaseRequest is the payload for POST /products/:type/purchase
type PurchaseRequest struct {
	Quantity uint64 `json:"quantity" validate:"required,gt=0"`
}

// ReconcileRequest is the payload for POST /sales/:id/reconcile
type ReconcileRequest struct {
	TransactionIDs []uint64 `json:"transaction_ids"`
}

// WriteReadingRequest is the payload for PUT /readings/:subject. The triple
// is stored as supplied; there is nothing to validate.
type WriteReadingRequest struct {
	Humidity          uint64 `json:"humidity"`
	MoistureContent   uint64 `json:"moisture_content"`
	StorageConditions uint64 `json:"storage_conditions"`
}
