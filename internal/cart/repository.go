package cart

import (
	"context"
	"sync"
)

// Repository provides access to cart lines. AddItem must be a single atomic
// increment-or-insert so two concurrent adds for the same (user, product)
// pair merge instead of producing duplicate lines.
type Repository interface {
	AddItem(ctx context.Context, userID, productID string, qty int, addedAt string) error
	ListByUser(ctx context.Context, userID string) ([]Line, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.Mutex
	lines []Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) AddItem(ctx context.Context, userID, productID string, qty int, addedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].UserID == userID && r.lines[i].ProductID == productID {
			r.lines[i].Quantity += qty
			return nil
		}
	}
	r.lines = append(r.lines, Line{UserID: userID, ProductID: productID, Quantity: qty, AddedAt: addedAt})
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Line, 0)
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}
