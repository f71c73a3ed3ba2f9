package handler

import (
	"time"

	"grainmarket-be/internal/catalog"
	"grainmarket-be/internal/exchange"
	"grainmarket-be/internal/readings"
)

type orderResponse struct {
	ID         uint64    `json:"id"`
	QuantityKg uint64    `json:"quantity_kg"`
	Status     string    `json:"status"`
	OwnerID    uint64    `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type offerResponse struct {
	ID          uint64    `json:"id"`
	OrderID     uint64    `json:"order_id"`
	HarvestDate string    `json:"harvest_date"`
	PricePerKg  uint64    `json:"price_per_kg"`
	Origin      string    `json:"origin"`
	Status      string    `json:"status"`
	OwnerID     uint64    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type transactionResponse struct {
	ID          uint64    `json:"id"`
	OrderID     uint64    `json:"order_id"`
	OfferID     uint64    `json:"offer_id"`
	FarmerID    uint64    `json:"farmer_id"`
	ProcessorID uint64    `json:"processor_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type productResponse struct {
	ProductType uint64    `json:"product_type"`
	WheatType   string    `json:"wheat_type"`
	Brand       string    `json:"brand"`
	Origin      string    `json:"origin"`
	Description string    `json:"description"`
	Price       uint64    `json:"price"`
	Stock       uint64    `json:"stock"`
	OwnerID     uint64    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type saleResponse struct {
	ID             uint64    `json:"id"`
	ProductType    uint64    `json:"product_type"`
	Quantity       uint64    `json:"quantity"`
	TransactionIDs []uint64  `json:"transaction_ids"`
	Status         string    `json:"status"`
	CustomerID     uint64    `json:"customer_id"`
	RetailerID     uint64    `json:"retailer_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type readingResponse struct {
	SubjectID         uint64 `json:"subject_id"`
	Humidity          uint64 `json:"humidity"`
	MoistureContent   uint64 `json:"moisture_content"`
	StorageConditions uint64 `json:"storage_conditions"`
}

func toOrderResponse(o *exchange.Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		QuantityKg: o.QuantityKg,
		Status:     string(o.Status),
		OwnerID:    o.OwnerID,
		CreatedAt:  o.CreatedAt,
	}
}

func toOfferResponses(offers []exchange.Offer) []offerResponse {
	out := make([]offerResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerResponse{
			ID:          o.ID,
			OrderID:     o.OrderID,
			HarvestDate: o.HarvestDate,
			PricePerKg:  o.PricePerKg,
			Origin:      o.Origin,
			Status:      string(o.Status),
			OwnerID:     o.OwnerID,
			CreatedAt:   o.CreatedAt,
		})
	}
	return out
}

func toTransactionResponses(txs []exchange.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, transactionResponse{
			ID:          t.ID,
			OrderID:     t.OrderID,
			OfferID:     t.OfferID,
			FarmerID:    t.FarmerID,
			ProcessorID: t.ProcessorID,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out
}

func toProductResponses(products []catalog.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ProductType: p.ProductType,
			WheatType:   p.WheatType,
			Brand:       p.Brand,
			Origin:      p.Origin,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			OwnerID:     p.OwnerID,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}

func toSaleResponses(sales []catalog.Sale) []saleResponse {
	out := make([]saleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleResponse{
			ID:             s.ID,
			ProductType:    s.ProductType,
			Quantity:       s.Quantity,
			TransactionIDs: s.TransactionIDs,
			Status:         string(s.Status),
			CustomerID:     s.CustomerID,
			RetailerID:     s.RetailerID,
			CreatedAt:      s.CreatedAt,
		})
	}
	return out
}

func toReadingResponse(r readings.Reading) readingResponse {
	return readingResponse{
		SubjectID:         r.SubjectID,
		Humidity:          r.Humidity,
		MoistureContent:   r.MoistureContent,
		StorageConditions: r.StorageConditions,
	}
}
