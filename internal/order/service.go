package order

import (
	"context"
	"time"

	"github.com/wichananm65/ishop-backend/internal/catalog"
	"github.com/wichananm65/ishop-backend/internal/storeid"
)

// CatalogResolver is the slice of the catalog service the assembly pipeline
// needs: one batched multi-key resolution per submission.
type CatalogResolver interface {
	Resolve(ctx context.Context, refs []string) (map[string]catalog.Product, error)
}

// Service runs the order-assembly pipeline and the status lifecycle.
type Service struct {
	repo    Repository
	catalog CatalogResolver
}

func NewService(repo Repository, resolver CatalogResolver) *Service {
	return &Service{repo: repo, catalog: resolver}
}

// Submission is a client-submitted order before validation. Shipping and tax
// are passed through as given; Subtotal, when present, is only a cross-check
// against the server-computed value.
type Submission struct {
	UserID   *string
	Lines    []Line
	Shipping float64
	Tax      float64
	Subtotal *float64
}

// Create assembles and persists an order: re-resolves every line against the
// authoritative catalog, recomputes money server-side, and stores the result
// as an immutable snapshot with status Created. All failures are
// all-or-nothing; no partial order is ever written.
func (s *Service) Create(ctx context.Context, sub Submission) (Order, error) {
	if len(sub.Lines) == 0 {
		return Order{}, ErrEmptyOrder
	}

	refs := make([]string, len(sub.Lines))
	for i, line := range sub.Lines {
		refs[i] = line.Ref
	}

	resolved, err := s.catalog.Resolve(ctx, refs)
	if err != nil {
		return Order{}, err
	}

	items, err := BuildItems(sub.Lines, resolved)
	if err != nil {
		return Order{}, err
	}

	totals, err := ComputeTotals(items, sub.Shipping, sub.Tax, sub.Subtotal)
	if err != nil {
		return Order{}, err
	}

	ord := Order{
		OrderID:   storeid.New(),
		UserID:    sub.UserID,
		Items:     items,
		Subtotal:  totals.Subtotal,
		Shipping:  totals.Shipping,
		Tax:       totals.Tax,
		Total:     totals.Total,
		Status:    StatusCreated,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return s.repo.Create(ctx, ord)
}

// ListByUser returns a user's orders, most recent first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus validates the target status against the fixed vocabulary and
// the reference against the store-id shape before touching the store, then
// performs the atomic status+timestamp update.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, rawStatus string) (Order, error) {
	status, err := ParseStatus(rawStatus)
	if err != nil {
		return Order{}, err
	}
	if !storeid.Valid(orderID) {
		// a malformed reference cannot name any existing order
		return Order{}, ErrNotFound
	}
	updatedAt := time.Now().UTC().Format(time.RFC3339)
	return s.repo.UpdateStatus(ctx, storeid.Normalize(orderID), status, updatedAt)
}
