package customer

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrUserExists         = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid user or password")
)

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (Customer, error)
	Create(ctx context.Context, cust Customer) (Customer, error)
	Update(ctx context.Context, userID string, cust Customer) (Customer, error)
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	customers []Customer
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{customers: make([]Customer, 0, len(seed))}
	r.customers = append(r.customers, seed...)
	return r
}

func (r *InMemoryRepository) GetByUserID(ctx context.Context, userID string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cust := range r.customers {
		if cust.UserID == userID {
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, cust Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.UserID == cust.UserID {
			return Customer{}, ErrUserExists
		}
	}
	r.customers = append(r.customers, cust)
	return cust, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, userID string, cust Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.customers {
		if r.customers[i].UserID == userID {
			cust.UserID = userID
			r.customers[i] = cust
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}
