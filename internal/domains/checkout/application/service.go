package application

import (
	"context"

	"github.com/shopspring/decimal"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

// Service orchestrates the checkout use case: resolve the cart against the
// catalog, price it, and persist the resulting order exactly once.
type Service struct {
	catalog ports.ProductFinder
	orders  ports.Repository
	taxRate decimal.Decimal
}

type Option func(*Service)

// WithTaxRate overrides the default 10% tax rate.
func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Service) {
		s.taxRate = rate
	}
}

func NewService(catalog ports.ProductFinder, orders ports.Repository, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		orders:  orders,
		taxRate: domain.DefaultTaxRate,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Checkout prices the cart and persists an order. The write happens only
// after every product reference resolved and all totals are computed; a
// failing checkout leaves no partial order behind.
func (s *Service) Checkout(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error) {
	customer := domain.Customer{
		Name:    input.CustomerName,
		Email:   input.CustomerEmail,
		Address: input.CustomerAddress,
	}
	if err := customer.Validate(); err != nil {
		return nil, mapError(err)
	}
	if len(input.Items) == 0 {
		return nil, mapError(domain.ErrEmptyCart)
	}
	for _, item := range input.Items {
		if err := item.Validate(); err != nil {
			return nil, mapError(err)
		}
	}

	requested := distinctProductIDs(input.Items)
	resolved, err := s.catalog.FindByIDs(ctx, requested)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[string]ports.CatalogProduct, len(resolved))
	for _, product := range resolved {
		productsByID[product.ID] = product
	}
	// Whole-cart-or-nothing: one unresolved reference fails the checkout.
	if len(productsByID) != len(requested) {
		return nil, ErrProductsNotFound
	}

	lines := make([]domain.LineItem, 0, len(input.Items))
	for _, item := range input.Items {
		product := productsByID[item.ProductID]
		lines = append(lines, domain.NewLineItem(product.ID, product.Title, item.Quantity, product.Price))
	}
	order, err := domain.NewOrder(customer, lines, s.taxRate)
	if err != nil {
		return nil, mapError(err)
	}

	saved, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	return &checkouttypes.CheckoutResult{
		OrderID:       saved.ID,
		InvoiceNumber: saved.InvoiceNumber,
		Subtotal:      saved.Subtotal,
		Tax:           saved.Tax,
		Total:         saved.Total,
		Items:         saved.Items,
	}, nil
}

func distinctProductIDs(items []domain.CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item.ProductID]; dup {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

var _ ports.Service = (*Service)(nil)
