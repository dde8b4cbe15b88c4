package application

import (
	"context"
	"errors"

	"github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// AddProduct persists a new product aggregate.
func (s *Service) AddProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetProduct loads a single product aggregate.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// FindByIDs resolves products for the given identifier set in one lookup.
// Unknown identifiers are simply absent from the result; callers decide
// whether a partial resolution is an error.
func (s *Service) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	products, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// ListProducts returns the whole catalog.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

var _ ports.Service = (*Service)(nil)
