package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/wichananm65/ishop-backend/internal/storeid"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository provides read access to catalog records. The catalog is owned
// by the store; this backend never writes product rows.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	// FindByRefs returns every product matching any of the given already
	// classified reference sets: oids against the store identifier, numeric
	// ids against the legacy id field, string ids against both external
	// identifier fields. Each non-empty set costs one batched query.
	FindByRefs(ctx context.Context, oids []string, numericIDs []float64, stringIDs []string) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) FindByRefs(ctx context.Context, oids []string, numericIDs []float64, stringIDs []string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	out := make([]Product, 0)
	add := func(p Product) {
		if !seen[p.OID] {
			seen[p.OID] = true
			out = append(out, p)
		}
	}

	for _, p := range r.storage {
		for _, oid := range oids {
			if storeid.Normalize(p.OID) == oid {
				add(p)
			}
		}
		for _, id := range numericIDs {
			if p.LegacyID != nil && *p.LegacyID == id {
				add(p)
			}
		}
		for _, s := range stringIDs {
			if (p.ProductID != nil && *p.ProductID == s) || (p.SKU != nil && *p.SKU == s) {
				add(p)
			}
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, 0)
	for _, p := range r.storage {
		if p.Category != nil && strings.EqualFold(*p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}
