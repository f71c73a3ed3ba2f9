package catalog

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lib/pq"
)

type Repository interface {
	CreateProduct(ctx context.Context, p Product) error
	GetProduct(ctx context.Context, productType uint64) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	UpdateProduct(ctx context.Context, productType uint64, upd ProductUpdate) error
	DeleteProduct(ctx context.Context, productType uint64) (bool, error)

	PurchaseTx(ctx context.Context, productType, quantity, customerID, retailerID uint64) (uint64, error)
	GetSale(ctx context.Context, id uint64) (*Sale, error)
	CompleteSale(ctx context.Context, saleID uint64, transactionIDs []uint64) (bool, error)
	ListSales(ctx context.Context) ([]Sale, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProduct(ctx context.Context, p Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (product_type, wheat_type, brand, origin, description, price, stock, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ProductType, p.WheatType, p.Brand, p.Origin, p.Description, p.Price, p.Stock, p.OwnerID)

	if err != nil && strings.Contains(err.Error(), "products_pkey") {
		return ErrProductExists
	}
	return err
}

func (r *repository) GetProduct(ctx context.Context, productType uint64) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT product_type, wheat_type, brand, origin, description, price, stock, owner_id, created_at
		FROM products
		WHERE product_type = $1
	`, productType).
		Scan(&p.ProductType, &p.WheatType, &p.Brand, &p.Origin, &p.Description, &p.Price, &p.Stock, &p.OwnerID, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_type, wheat_type, brand, origin, description, price, stock, owner_id, created_at
		FROM products
		ORDER BY product_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ProductType, &p.WheatType, &p.Brand, &p.Origin, &p.Description, &p.Price, &p.Stock, &p.OwnerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) UpdateProduct(ctx context.Context, productType uint64, upd ProductUpdate) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET wheat_type  = COALESCE($1, wheat_type),
		    brand       = COALESCE($2, brand),
		    origin      = COALESCE($3, origin),
		    description = COALESCE($4, description),
		    price       = COALESCE($5, price),
		    stock       = COALESCE($6, stock)
		WHERE product_type = $7
	`,
		nullString(upd.WheatType),
		nullString(upd.Brand),
		nullString(upd.Origin),
		nullString(upd.Description),
		nullInt64(upd.Price),
		nullInt64(upd.Stock),
		productType,
	)
	return err
}

func (r *repository) DeleteProduct(ctx context.Context, productType uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM products
		WHERE product_type = $1
	`, productType)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// PurchaseTx decrements stock and appends the incomplete sale in one
// transaction. The stock guard in the WHERE clause keeps concurrent purchases
// from oversubscribing the product.
func (r *repository) PurchaseTx(ctx context.Context, productType, quantity, customerID, retailerID uint64) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - $1
		WHERE product_type = $2 AND stock >= $1
	`, quantity, productType)
	if err != nil {
		return 0, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return 0, err
	} else if n != 1 {
		return 0, ErrInsufficientStock
	}

	var saleID uint64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO sales (product_type, quantity, transaction_ids, status, customer_id, retailer_id)
		VALUES ($1, $2, '{}', $3, $4, $5)
		RETURNING id
	`, productType, quantity, string(SaleStatusIncomplete), customerID, retailerID).Scan(&saleID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return saleID, nil
}

func (r *repository) GetSale(ctx context.Context, id uint64) (*Sale, error) {
	var s Sale
	var txIDs pq.Int64Array
	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_type, quantity, transaction_ids, status, customer_id, retailer_id, created_at
		FROM sales
		WHERE id = $1
	`, id).
		Scan(&s.ID, &s.ProductType, &s.Quantity, &txIDs, &s.Status, &s.CustomerID, &s.RetailerID, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}

	s.TransactionIDs = fromInt64Array(txIDs)
	return &s, nil
}

func (r *repository) CompleteSale(ctx context.Context, saleID uint64, transactionIDs []uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sales
		SET transaction_ids = $1, status = $2
		WHERE id = $3 AND status = $4
	`, toInt64Array(transactionIDs), string(SaleStatusComplete), saleID, string(SaleStatusIncomplete))
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repository) ListSales(ctx context.Context) ([]Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_type, quantity, transaction_ids, status, customer_id, retailer_id, created_at
		FROM sales
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []Sale
	for rows.Next() {
		var s Sale
		var txIDs pq.Int64Array
		if err := rows.Scan(&s.ID, &s.ProductType, &s.Quantity, &txIDs, &s.Status, &s.CustomerID, &s.RetailerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.TransactionIDs = fromInt64Array(txIDs)
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *uint64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func toInt64Array(ids []uint64) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

func fromInt64Array(arr pq.Int64Array) []uint64 {
	out := make([]uint64, 0, len(arr))
	for _, id := range arr {
		out = append(out, uint64(id))
	}
	return out
}
