package cart

import (
	"context"
	"errors"
	"time"
)

var ErrMissingField = errors.New("userId and productId are required")

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddItem merges qty into any existing line for (userID, productID),
// otherwise inserts a new line. Quantity defaults to 1 when not positive.
func (s *Service) AddItem(ctx context.Context, userID, productID string, qty int) error {
	if userID == "" || productID == "" {
		return ErrMissingField
	}
	if qty <= 0 {
		qty = 1
	}
	addedAt := time.Now().UTC().Format(time.RFC3339)
	return s.repo.AddItem(ctx, userID, productID, qty, addedAt)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Line, error) {
	if userID == "" {
		return nil, ErrMissingField
	}
	return s.repo.ListByUser(ctx, userID)
}
