package ports

import (
	"context"
	"errors"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists orders. Create assigns the order identifier; there
// is deliberately no update or delete operation.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
