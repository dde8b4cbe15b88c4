package ports

import (
	"context"
	"errors"

	"github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists products and exposes the batched lookups the
// checkout context depends on.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
