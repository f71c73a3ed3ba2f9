package exchange

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	CreateOrder(ctx context.Context, quantityKg, ownerID uint64) (uint64, error)
	GetOrder(ctx context.Context, id uint64) (*Order, error)
	MarkOrderCancelled(ctx context.Context, id uint64) (bool, error)

	CreateOffer(ctx context.Context, orderID uint64, harvestDate string, pricePerKg uint64, origin string, ownerID uint64) (uint64, error)
	GetOffer(ctx context.Context, id uint64) (*Offer, error)
	MarkOfferCancelled(ctx context.Context, id uint64) (bool, error)
	ListActiveOffers(ctx context.Context, orderID uint64) ([]Offer, error)

	AcceptOffer(ctx context.Context, orderID, offerID, farmerID, processorID uint64) (uint64, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
	TransactionsExist(ctx context.Context, ids []uint64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateOrder(ctx context.Context, quantityKg, ownerID uint64) (uint64, error) {
	var id uint64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (quantity_kg, status, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, quantityKg, string(StatusInProgress), ownerID).Scan(&id)
	return id, err
}

func (r *repository) GetOrder(ctx context.Context, id uint64) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, quantity_kg, status, owner_id, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.QuantityKg, &o.Status, &o.OwnerID, &o.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// MarkOrderCancelled flips an in-progress order to cancelled. The status guard
// in the WHERE clause makes the transition race-safe: a concurrent accept or
// cancel leaves zero rows affected.
func (r *repository) MarkOrderCancelled(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = $3
	`, string(StatusCancelled), id, string(StatusInProgress))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) CreateOffer(ctx context.Context, orderID uint64, harvestDate string, pricePerKg uint64, origin string, ownerID uint64) (uint64, error) {
	var id uint64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO offers (order_id, harvest_date, price_per_kg, origin, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, orderID, harvestDate, pricePerKg, origin, string(StatusInProgress), ownerID).Scan(&id)
	return id, err
}

func (r *repository) GetOffer(ctx context.Context, id uint64) (*Offer, error) {
	var o Offer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, harvest_date, price_per_kg, origin, status, owner_id, created_at
		FROM offers
		WHERE id = $1
	`, id).Scan(&o.ID, &o.OrderID, &o.HarvestDate, &o.PricePerKg, &o.Origin, &o.Status, &o.OwnerID, &o.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) MarkOfferCancelled(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE offers
		SET status = $1
		WHERE id = $2 AND status = $3
	`, string(StatusCancelled), id, string(StatusInProgress))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) ListActiveOffers(ctx context.Context, orderID uint64) ([]Offer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, harvest_date, price_per_kg, origin, status, owner_id, created_at
		FROM offers
		WHERE order_id = $1 AND status = $2
		ORDER BY id
	`, orderID, string(StatusInProgress))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.ID, &o.OrderID, &o.HarvestDate, &o.PricePerKg, &o.Origin, &o.Status, &o.OwnerID, &o.CreatedAt); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// AcceptOffer completes the order, completes the offer and appends the
// exchange transaction as one atomic unit. Both updates are guarded on the
// in-progress status; if either guard misses, the whole transaction rolls
// back and no intermediate state survives.
func (r *repository) AcceptOffer(ctx context.Context, orderID, offerID, farmerID, processorID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2 AND status = $3
	`, string(StatusCompleted), orderID, string(StatusInProgress))
	if err != nil {
		return 0, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, err
	} else if n != 1 {
		return 0, ErrOrderNotInProgress
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE offers
		SET status = $1
		WHERE id = $2 AND order_id = $3 AND status = $4
	`, string(StatusCompleted), offerID, orderID, string(StatusInProgress))
	if err != nil {
		return 0, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, err
	} else if n != 1 {
		return 0, ErrOfferNotInProgress
	}

	var txID uint64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO exchange_transactions (order_id, offer_id, farmer_id, processor_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, orderID, offerID, farmerID, processorID).Scan(&txID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return txID, nil
}

func (r *repository) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, offer_id, farmer_id, processor_id, created_at
		FROM exchange_transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.OrderID, &t.OfferID, &t.FarmerID, &t.ProcessorID, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *repository) TransactionsExist(ctx context.Context, ids []uint64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	arg := make([]int64, 0, len(ids))
	for _, id := range ids {
		arg = append(arg, int64(id))
	}

	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT id)
		FROM exchange_transactions
		WHERE id = ANY($1)
	`, pq.Array(arg)).Scan(&count)
	if err != nil {
		return false, err
	}

	distinct := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		distinct[id] = struct{}{}
	}
	return count == len(distinct), nil
}
