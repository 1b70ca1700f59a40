package catalog

import "context"

// ServiceInterface is the catalog surface other packages depend on.
type ServiceInterface interface {
	List(ctx context.Context) ([]Product, error)
	Resolve(ctx context.Context, refs []string) (map[string]Product, error)
	GetByRef(ctx context.Context, ref string) (Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
}

// Service provides read-side business logic for the catalog.
type Service struct {
	repo     Repository
	resolver *Resolver
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, resolver: NewResolver(repo)}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Resolve builds the multi-key product index for a batch of raw references.
func (s *Service) Resolve(ctx context.Context, refs []string) (map[string]Product, error) {
	return s.resolver.Resolve(ctx, refs)
}

// GetByRef resolves a single reference of any identifier form.
func (s *Service) GetByRef(ctx context.Context, ref string) (Product, error) {
	index, err := s.resolver.Resolve(ctx, []string{ref})
	if err != nil {
		return Product{}, err
	}
	p, ok := index[LookupKey(ref)]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

var _ ServiceInterface = (*Service)(nil)
