package order

import "context"

// Repository defines persistence operations for orders. Implementations must
// make UpdateStatus a single atomic read-modify-write on the order row.
type Repository interface {
	Create(ctx context.Context, ord Order) (Order, error)
	// ListByUser returns a user's orders most-recent-first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	// UpdateStatus atomically sets status and updatedAt on the referenced
	// order and returns the updated row. An unknown id yields ErrNotFound.
	UpdateStatus(ctx context.Context, orderID string, status Status, updatedAt string) (Order, error)
}
