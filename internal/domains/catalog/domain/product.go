package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle    = errors.New("product title must not be empty")
	ErrNegativePrice = errors.New("product price must not be negative")
)

// Product models a catalog entry. The identifier is assigned by the
// persistence adapter on first save and is opaque to callers.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       decimal.Decimal
}

// NewProduct validates and constructs a new Product aggregate.
func NewProduct(id, title, description string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		ID:          id,
		Title:       title,
		Description: description,
		Price:       price,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate enforces invariants on the aggregate.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
