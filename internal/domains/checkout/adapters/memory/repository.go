package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}}
}

// Create stores the order under a freshly assigned identifier.
func (r *Repository) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	clone.ID = uuid.NewString()
	r.mu.Lock()
	r.orders[clone.ID] = clone
	r.mu.Unlock()
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.LineItem(nil), order.Items...)
	return &clone
}
