package catalog

import (
	"context"

	"grainmarket-be/internal/exchange"
	"grainmarket-be/internal/logger"
	"grainmarket-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateProduct(ctx context.Context, in CreateProductInput) error
	UpdateProduct(ctx context.Context, productType uint64, upd ProductUpdate) error
	RemoveProduct(ctx context.Context, productType uint64) error
	GetProducts(ctx context.Context, productType uint64) ([]Product, error)

	Purchase(ctx context.Context, productType, quantity uint64) (uint64, error)
	Reconcile(ctx context.Context, saleID uint64, transactionIDs []uint64) error
	ReconcileVerified(ctx context.Context, saleID uint64, transactionIDs []uint64) error
	ListSales(ctx context.Context) ([]Sale, error)
}

type CreateProductInput struct {
	ProductType uint64
	WheatType   string
	Brand       string
	Origin      string
	Description string
	Price       uint64
	Stock       uint64
}

type service struct {
	repo         Repository
	exchangeRepo exchange.Repository
}

func NewService(repo Repository, exchangeRepo exchange.Repository) Service {
	return &service{
		repo:         repo,
		exchangeRepo: exchangeRepo,
	}
}

func (s *service) CreateProduct(ctx context.Context, in CreateProductInput) error {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	// type 0 is the "all products" sentinel in the query API
	if in.ProductType == 0 {
		return ErrInvalidProductType
	}

	return s.repo.CreateProduct(ctx, Product{
		ProductType: in.ProductType,
		WheatType:   in.WheatType,
		Brand:       in.Brand,
		Origin:      in.Origin,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		OwnerID:     callerID,
	})
}

func (s *service) UpdateProduct(ctx context.Context, productType uint64, upd ProductUpdate) error {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	p, err := s.repo.GetProduct(ctx, productType)
	if err != nil {
		return err
	}
	if p.OwnerID != callerID {
		return ErrNotProductOwner
	}

	return s.repo.UpdateProduct(ctx, productType, upd)
}

func (s *service) RemoveProduct(ctx context.Context, productType uint64) error {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	p, err := s.repo.GetProduct(ctx, productType)
	if err != nil {
		return err
	}
	if p.OwnerID != callerID {
		return ErrNotProductOwner
	}

	ok, err = s.repo.DeleteProduct(ctx, productType)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

// GetProducts returns the single product for a non-zero type, or every
// existing product for the 0 sentinel.
func (s *service) GetProducts(ctx context.Context, productType uint64) ([]Product, error) {
	if productType == 0 {
		return s.repo.ListProducts(ctx)
	}

	p, err := s.repo.GetProduct(ctx, productType)
	if err != nil {
		return nil, err
	}
	return []Product{*p}, nil
}

// Purchase decrements stock and opens an incomplete sale owned by the caller
// as customer and the product's current owner as retailer. It returns the new
// sale id.
func (s *service) Purchase(ctx context.Context, productType, quantity uint64) (uint64, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	if quantity == 0 {
		return 0, ErrInvalidQuantity
	}

	p, err := s.repo.GetProduct(ctx, productType)
	if err != nil {
		return 0, err
	}
	if p.Stock < quantity {
		return 0, ErrInsufficientStock
	}

	return s.repo.PurchaseTx(ctx, productType, quantity, callerID, p.OwnerID)
}

// Reconcile attaches exchange transaction identifiers to an incomplete sale
// and marks it complete. The supplied identifiers are recorded as-is: whether
// they name real, matching transactions on the farmer-processor ledger is the
// retailer's responsibility, not this ledger's. Use ReconcileVerified for the
// checked variant.
//
// Authorization is re-derived from the product's current owner, not from the
// retailer recorded on the sale.
func (s *service) Reconcile(ctx context.Context, saleID uint64, transactionIDs []uint64) error {
	return s.reconcile(ctx, saleID, transactionIDs, false)
}

// ReconcileVerified is Reconcile plus an existence check of every referenced
// exchange transaction. Quantity matching is still not enforced.
func (s *service) ReconcileVerified(ctx context.Context, saleID uint64, transactionIDs []uint64) error {
	return s.reconcile(ctx, saleID, transactionIDs, true)
}

func (s *service) reconcile(ctx context.Context, saleID uint64, transactionIDs []uint64, verify bool) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Reconcile"),
		zap.Uint64("sale_id", saleID),
		zap.Int("transaction_count", len(transactionIDs)),
	)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	// 1. Load the sale
	sale, err := s.repo.GetSale(ctx, saleID)
	if err != nil {
		return err
	}
	if sale.Status != SaleStatusIncomplete {
		return ErrSaleAlreadyComplete
	}

	// 2. Authorization against the product's current owner
	p, err := s.repo.GetProduct(ctx, sale.ProductType)
	if err != nil {
		return err
	}
	if p.OwnerID != callerID {
		return ErrNotProductOwner
	}

	// 3. Optional cross-ledger existence check
	if verify {
		ok, err := s.exchangeRepo.TransactionsExist(ctx, transactionIDs)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownTransaction
		}
	}

	// 4. One-way transition
	ok, err = s.repo.CompleteSale(ctx, saleID, transactionIDs)
	if err != nil {
		log.Error("failed to complete sale", zap.Error(err))
		return err
	}
	if !ok {
		return ErrSaleAlreadyComplete
	}

	log.Info("sale reconciled", zap.Uint64s("transaction_ids", transactionIDs))
	return nil
}

func (s *service) ListSales(ctx context.Context) ([]Sale, error) {
	return s.repo.ListSales(ctx)
}
