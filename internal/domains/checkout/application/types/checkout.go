package types

import (
	"github.com/shopspring/decimal"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
)

// CheckoutInput is the command accepted by the checkout use case.
type CheckoutInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Items           []domain.CartItem
}

// CheckoutResult is returned to the caller after the order is persisted.
type CheckoutResult struct {
	OrderID       string
	InvoiceNumber string
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Items         []domain.LineItem
}
