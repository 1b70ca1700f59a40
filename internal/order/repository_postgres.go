package order

import (
	"context"
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `INSERT INTO orders (oid, user_id, items, subtotal, shipping, tax, total, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

	listOrdersByUserQuery = `SELECT oid, user_id, items, subtotal, shipping, tax, total, status, created_at, updated_at
        FROM orders
        WHERE user_id = $1
        ORDER BY created_at DESC`

	updateOrderStatusQuery = `UPDATE orders
        SET status = $1, updated_at = $2
        WHERE oid = $3
        RETURNING oid, user_id, items, subtotal, shipping, tax, total, status, created_at, updated_at`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	var userID any
	if ord.UserID != nil {
		userID = *ord.UserID
	}

	if _, err := r.db.ExecContext(ctx, insertOrderQuery,
		ord.OrderID, userID, itemsJSON, ord.Subtotal, ord.Shipping, ord.Tax, ord.Total, string(ord.Status), ord.CreatedAt); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID string, status Status, updatedAt string) (Order, error) {
	row := r.db.QueryRowContext(ctx, updateOrderStatusQuery, string(status), updatedAt, orderID)
	ord, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(s rowScanner) (Order, error) {
	var (
		ord       Order
		userID    sql.NullString
		itemsJSON []byte
		status    string
		updatedAt sql.NullString
	)
	if err := s.Scan(&ord.OrderID, &userID, &itemsJSON, &ord.Subtotal, &ord.Shipping, &ord.Tax, &ord.Total, &status, &ord.CreatedAt, &updatedAt); err != nil {
		return Order{}, err
	}
	if userID.Valid {
		ord.UserID = &userID.String
	}
	if updatedAt.Valid {
		ord.UpdatedAt = &updatedAt.String
	}
	ord.Status = Status(status)
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}
