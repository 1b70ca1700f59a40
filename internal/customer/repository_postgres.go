package customer

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCustomerQuery = `SELECT user_id, password, first_name, last_name, email, phone, created_at, updated_at
        FROM customers
        WHERE user_id = $1`

	insertCustomerQuery = `INSERT INTO customers (user_id, password, first_name, last_name, email, phone, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	updateCustomerQuery = `UPDATE customers
        SET password = $1, first_name = $2, last_name = $3, email = $4, phone = $5, updated_at = $6
        WHERE user_id = $7`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (Customer, error) {
	row := r.db.QueryRowContext(ctx, getCustomerQuery, userID)

	var (
		cust                                       Customer
		firstName, lastName, email, phone, updated sql.NullString
	)
	if err := row.Scan(&cust.UserID, &cust.Password, &firstName, &lastName, &email, &phone, &cust.CreatedAt, &updated); err != nil {
		if err == sql.ErrNoRows {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	cust.FirstName = firstName.String
	cust.LastName = lastName.String
	cust.Email = email.String
	cust.Phone = phone.String
	cust.UpdatedAt = updated.String
	return cust, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cust Customer) (Customer, error) {
	if _, err := r.db.ExecContext(ctx, insertCustomerQuery,
		cust.UserID, cust.Password, cust.FirstName, cust.LastName, cust.Email, cust.Phone, cust.CreatedAt, cust.UpdatedAt); err != nil {
		return Customer{}, err
	}
	return cust, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID string, cust Customer) (Customer, error) {
	res, err := r.db.ExecContext(ctx, updateCustomerQuery,
		cust.Password, cust.FirstName, cust.LastName, cust.Email, cust.Phone, cust.UpdatedAt, userID)
	if err != nil {
		return Customer{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Customer{}, ErrNotFound
	}
	cust.UserID = userID
	return cust, nil
}
