package exchange

import (
	"context"
	"testing"

	"grainmarket-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrder(ctx context.Context, quantityKg, ownerID uint64) (uint64, error) {
	args := m.Called(ctx, quantityKg, ownerID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRepository) GetOrder(ctx context.Context, id uint64) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) MarkOrderCancelled(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateOffer(ctx context.Context, orderID uint64, harvestDate string, pricePerKg uint64, origin string, ownerID uint64) (uint64, error) {
	args := m.Called(ctx, orderID, harvestDate, pricePerKg, origin, ownerID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRepository) GetOffer(ctx context.Context, id uint64) (*Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Offer), args.Error(1)
}

func (m *MockRepository) MarkOfferCancelled(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListActiveOffers(ctx context.Context, orderID uint64) ([]Offer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Offer), args.Error(1)
}

func (m *MockRepository) AcceptOffer(ctx context.Context, orderID, offerID, farmerID, processorID uint64) (uint64, error) {
	args := m.Called(ctx, orderID, offerID, farmerID, processorID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRepository) ListTransactions(ctx context.Context) ([]Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Transaction), args.Error(1)
}

func (m *MockRepository) TransactionsExist(ctx context.Context, ids []uint64) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func callerCtx(id uint64) context.Context {
	return utils.SetUserContext(context.Background(), id, "", "")
}

func TestService_CreateOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		ctx := callerCtx(10)

		repo.On("CreateOrder", mock.Anything, uint64(100), uint64(10)).Return(uint64(1), nil)

		id, err := svc.CreateOrder(ctx, 100)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
		repo.AssertExpectations(t)
	})

	t.Run("Zero Quantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateOrder(callerCtx(10), 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateOrder(context.Background(), 100)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		ctx := callerCtx(10)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, QuantityKg: 100, Status: StatusInProgress, OwnerID: 10}, nil)
		repo.On("MarkOrderCancelled", mock.Anything, uint64(1)).Return(true, nil)

		id, err := svc.CancelOrder(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("Not Owner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusInProgress, OwnerID: 10}, nil)

		_, err := svc.CancelOrder(callerCtx(99), 1)
		assert.ErrorIs(t, err, ErrNotOrderOwner)
		repo.AssertNotCalled(t, "MarkOrderCancelled")
	})

	t.Run("Already Completed", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusCompleted, OwnerID: 10}, nil)

		_, err := svc.CancelOrder(callerCtx(10), 1)
		assert.ErrorIs(t, err, ErrOrderNotInProgress)
	})

	t.Run("Already Cancelled", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusCancelled, OwnerID: 10}, nil)

		_, err := svc.CancelOrder(callerCtx(10), 1)
		assert.ErrorIs(t, err, ErrOrderNotInProgress)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(404)).Return(nil, ErrOrderNotFound)

		_, err := svc.CancelOrder(callerCtx(10), 404)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Lost Race", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusInProgress, OwnerID: 10}, nil)
		repo.On("MarkOrderCancelled", mock.Anything, uint64(1)).Return(false, nil)

		_, err := svc.CancelOrder(callerCtx(10), 1)
		assert.ErrorIs(t, err, ErrOrderNotInProgress)
	})
}

func TestService_CreateOffer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusInProgress, OwnerID: 10}, nil)
		repo.On("CreateOffer", mock.Anything, uint64(1), "2024-06-01", uint64(5), "Kansas", uint64(20)).
			Return(uint64(1), nil)

		id, err := svc.CreateOffer(callerCtx(20), 1, "2024-06-01", 5, "Kansas")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("Order May Be Terminal", func(t *testing.T) {
		// An offer against a settled order is allowed; it just stays unaccepted.
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).
			Return(&Order{ID: 1, Status: StatusCancelled, OwnerID: 10}, nil)
		repo.On("CreateOffer", mock.Anything, uint64(1), "2024-06-01", uint64(5), "Kansas", uint64(20)).
			Return(uint64(2), nil)

		_, err := svc.CreateOffer(callerCtx(20), 1, "2024-06-01", 5, "Kansas")
		assert.NoError(t, err)
	})

	t.Run("Zero Price", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateOffer(callerCtx(20), 1, "2024-06-01", 0, "Kansas")
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("Order Not Found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(404)).Return(nil, ErrOrderNotFound)

		_, err := svc.CreateOffer(callerCtx(20), 404, "2024-06-01", 5, "Kansas")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_AcceptOffer(t *testing.T) {
	order := &Order{ID: 1, QuantityKg: 100, Status: StatusInProgress, OwnerID: 10}
	offer := &Offer{ID: 1, OrderID: 1, PricePerKg: 5, Status: StatusInProgress, OwnerID: 20}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).Return(order, nil)
		repo.On("GetOffer", mock.Anything, uint64(1)).Return(offer, nil)
		repo.On("AcceptOffer", mock.Anything, uint64(1), uint64(1), uint64(20), uint64(10)).
			Return(uint64(1), nil)

		txID, err := svc.AcceptOffer(callerCtx(10), 1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), txID)
		repo.AssertExpectations(t)
	})

	t.Run("Not Order Owner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).Return(order, nil)
		repo.On("GetOffer", mock.Anything, uint64(1)).Return(offer, nil)

		_, err := svc.AcceptOffer(callerCtx(20), 1, 1)
		assert.ErrorIs(t, err, ErrNotOrderOwner)
		repo.AssertNotCalled(t, "AcceptOffer")
	})

	t.Run("Second Accept Fails", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		done := &Order{ID: 1, QuantityKg: 100, Status: StatusCompleted, OwnerID: 10}
		repo.On("GetOrder", mock.Anything, uint64(1)).Return(done, nil)
		repo.On("GetOffer", mock.Anything, uint64(2)).
			Return(&Offer{ID: 2, OrderID: 1, Status: StatusInProgress, OwnerID: 21}, nil)

		_, err := svc.AcceptOffer(callerCtx(10), 1, 2)
		assert.ErrorIs(t, err, ErrOrderNotInProgress)
	})

	t.Run("Offer Not In Progress", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).Return(order, nil)
		repo.On("GetOffer", mock.Anything, uint64(1)).
			Return(&Offer{ID: 1, OrderID: 1, Status: StatusCancelled, OwnerID: 20}, nil)

		_, err := svc.AcceptOffer(callerCtx(10), 1, 1)
		assert.ErrorIs(t, err, ErrOfferNotInProgress)
	})

	t.Run("Offer Order Mismatch", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetOrder", mock.Anything, uint64(1)).Return(order, nil)
		repo.On("GetOffer", mock.Anything, uint64(3)).
			Return(&Offer{ID: 3, OrderID: 2, Status: StatusInProgress, OwnerID: 20}, nil)

		_, err := svc.AcceptOffer(callerCtx(10), 1, 3)
		assert.ErrorIs(t, err, ErrOfferOrderMismatch)
	})
}

// Matching scenario: two farmers bid on one order, the processor accepts the
// first offer, the second offer stays active.
func TestService_MatchingScenario(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	processor := callerCtx(10)

	repo.On("CreateOrder", mock.Anything, uint64(100), uint64(10)).Return(uint64(1), nil)
	orderID, err := svc.CreateOrder(processor, 100)
	require.NoError(t, err)
	require.Equal(t, uint64(1), orderID)

	order := &Order{ID: 1, QuantityKg: 100, Status: StatusInProgress, OwnerID: 10}
	repo.On("GetOrder", mock.Anything, uint64(1)).Return(order, nil)

	repo.On("CreateOffer", mock.Anything, uint64(1), "2024-06-01", uint64(5), "Kansas", uint64(20)).
		Return(uint64(1), nil)
	repo.On("CreateOffer", mock.Anything, uint64(1), "2024-06-10", uint64(4), "Alberta", uint64(21)).
		Return(uint64(2), nil)

	offer1, err := svc.CreateOffer(callerCtx(20), 1, "2024-06-01", 5, "Kansas")
	require.NoError(t, err)
	offer2, err := svc.CreateOffer(callerCtx(21), 1, "2024-06-10", 4, "Alberta")
	require.NoError(t, err)
	require.Equal(t, uint64(1), offer1)
	require.Equal(t, uint64(2), offer2)

	repo.On("GetOffer", mock.Anything, uint64(1)).
		Return(&Offer{ID: 1, OrderID: 1, Status: StatusInProgress, OwnerID: 20}, nil)
	repo.On("AcceptOffer", mock.Anything, uint64(1), uint64(1), uint64(20), uint64(10)).
		Return(uint64(1), nil)

	txID, err := svc.AcceptOffer(processor, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), txID)

	repo.On("ListActiveOffers", mock.Anything, uint64(1)).
		Return([]Offer{{ID: 2, OrderID: 1, Status: StatusInProgress, OwnerID: 21}}, nil)

	active, err := svc.ListActiveOffers(processor, 1)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint64(2), active[0].ID)
}
