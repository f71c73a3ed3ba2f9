package exchange

import (
	"context"

	"grainmarket-be/internal/logger"
	"grainmarket-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, quantityKg uint64) (uint64, error)
	CancelOrder(ctx context.Context, orderID uint64) (uint64, error)
	GetOrder(ctx context.Context, orderID uint64) (*Order, error)

	CreateOffer(ctx context.Context, orderID uint64, harvestDate string, pricePerKg uint64, origin string) (uint64, error)
	CancelOffer(ctx context.Context, offerID uint64) (uint64, error)
	ListActiveOffers(ctx context.Context, orderID uint64) ([]Offer, error)

	AcceptOffer(ctx context.Context, orderID, offerID uint64) (uint64, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOrder(ctx context.Context, quantityKg uint64) (uint64, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	if quantityKg == 0 {
		return 0, ErrInvalidQuantity
	}

	return s.repo.CreateOrder(ctx, quantityKg, callerID)
}

func (s *service) CancelOrder(ctx context.Context, orderID uint64) (uint64, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}

	if order.OwnerID != callerID {
		return 0, ErrNotOrderOwner
	}
	if order.Status != StatusInProgress {
		return 0, ErrOrderNotInProgress
	}

	ok, err = s.repo.MarkOrderCancelled(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if !ok {
		// lost the race against another transition
		return 0, ErrOrderNotInProgress
	}

	return orderID, nil
}

func (s *service) GetOrder(ctx context.Context, orderID uint64) (*Order, error) {
	return s.repo.GetOrder(ctx, orderID)
}

// CreateOffer records a farmer's proposal against an order. The order must
// exist but is deliberately not required to still be in progress; offers
// against settled orders simply never get accepted.
func (s *service) CreateOffer(ctx context.Context, orderID uint64, harvestDate string, pricePerKg uint64, origin string) (uint64, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	if pricePerKg == 0 {
		return 0, ErrInvalidPrice
	}

	if _, err := s.repo.GetOrder(ctx, orderID); err != nil {
		return 0, err
	}

	return s.repo.CreateOffer(ctx, orderID, harvestDate, pricePerKg, origin, callerID)
}

func (s *service) CancelOffer(ctx context.Context, offerID uint64) (uint64, error) {
	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return 0, err
	}

	if offer.OwnerID != callerID {
		return 0, ErrNotOfferOwner
	}
	if offer.Status != StatusInProgress {
		return 0, ErrOfferNotInProgress
	}

	ok, err = s.repo.MarkOfferCancelled(ctx, offerID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrOfferNotInProgress
	}

	return offerID, nil
}

func (s *service) ListActiveOffers(ctx context.Context, orderID uint64) ([]Offer, error) {
	if _, err := s.repo.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListActiveOffers(ctx, orderID)
}

// AcceptOffer is the sole synchronization point between the processor and
// farmer ledgers: it settles exactly one order against exactly one offer and
// appends the immutable exchange transaction.
func (s *service) AcceptOffer(ctx context.Context, orderID, offerID uint64) (uint64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AcceptOffer"),
		zap.Uint64("order_id", orderID),
		zap.Uint64("offer_id", offerID),
	)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}

	// 1. Load both sides
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	offer, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return 0, err
	}

	// 2. Preconditions
	if order.OwnerID != callerID {
		return 0, ErrNotOrderOwner
	}
	if order.Status != StatusInProgress {
		return 0, ErrOrderNotInProgress
	}
	if offer.Status != StatusInProgress {
		return 0, ErrOfferNotInProgress
	}
	if offer.OrderID != orderID {
		return 0, ErrOfferOrderMismatch
	}

	// 3. Atomic transition boundary
	txID, err := s.repo.AcceptOffer(ctx, orderID, offerID, offer.OwnerID, callerID)
	if err != nil {
		log.Error("failed to accept offer", zap.Error(err))
		return 0, err
	}

	log.Info("offer accepted",
		zap.Uint64("transaction_id", txID),
		zap.Uint64("farmer_id", offer.OwnerID),
		zap.Uint64("processor_id", callerID),
	)

	return txID, nil
}

func (s *service) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx)
}
