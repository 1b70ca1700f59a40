package customer

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new customer. The chosen UserId must be unused and the
// password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, cust Customer) (Customer, error) {
	if _, err := s.repo.GetByUserID(ctx, cust.UserID); err == nil {
		return Customer{}, ErrUserExists
	} else if err != ErrNotFound {
		return Customer{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cust.Password), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, err
	}
	cust.Password = string(hashed)

	now := time.Now().UTC().Format(time.RFC3339)
	cust.CreatedAt = now
	cust.UpdatedAt = now
	return s.repo.Create(ctx, cust)
}

func (s *Service) Authenticate(ctx context.Context, userID, password string) (Customer, error) {
	cust, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return Customer{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(cust.Password), []byte(password)) != nil {
		return Customer{}, ErrInvalidCredentials
	}
	return cust, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (Customer, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Update applies a partial profile update. A blank password keeps the stored
// hash; a non-blank one is rehashed.
func (s *Service) Update(ctx context.Context, userID string, cust Customer) (Customer, error) {
	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return Customer{}, err
	}

	if cust.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cust.Password), bcrypt.DefaultCost)
		if err != nil {
			return Customer{}, err
		}
		existing.Password = string(hashed)
	}
	if cust.FirstName != "" {
		existing.FirstName = cust.FirstName
	}
	if cust.LastName != "" {
		existing.LastName = cust.LastName
	}
	if cust.Email != "" {
		existing.Email = cust.Email
	}
	if cust.Phone != "" {
		existing.Phone = cust.Phone
	}
	existing.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	return s.repo.Update(ctx, userID, existing)
}
