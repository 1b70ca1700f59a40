package cart

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// one conditional statement, not read-then-write: the store resolves
	// concurrent adds for the same pair by summing quantities
	upsertCartItemQuery = `INSERT INTO cart_items (user_id, product_id, quantity, added_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	listCartItemsQuery = `SELECT user_id, product_id, quantity, added_at
        FROM cart_items
        WHERE user_id = $1
        ORDER BY added_at`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) AddItem(ctx context.Context, userID, productID string, qty int, addedAt string) error {
	_, err := r.db.ExecContext(ctx, upsertCartItemQuery, userID, productID, qty, addedAt)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, listCartItemsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Line, 0)
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.UserID, &l.ProductID, &l.Quantity, &l.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
