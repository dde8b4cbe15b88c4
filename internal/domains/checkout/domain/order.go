package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart        = errors.New("cart must contain at least one item")
	ErrInvalidQuantity  = errors.New("cart item quantity must be greater than zero")
	ErrMissingProductID = errors.New("cart item product id must not be empty")
	ErrBlankCustomer    = errors.New("customer name, email, and address must not be blank")
)

// DefaultTaxRate is applied to the cart subtotal when no rate is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.10)

// moneyPlaces is the rounding precision for currency display. Rounding is
// half away from zero, matching decimal.Round.
const moneyPlaces = 2

// CartItem pairs a product reference with a requested quantity.
type CartItem struct {
	ProductID string
	Quantity  int32
}

// Validate guards the item against malformed input even though the
// transport layer is expected to pre-validate.
func (c CartItem) Validate() error {
	if strings.TrimSpace(c.ProductID) == "" {
		return ErrMissingProductID
	}
	if c.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}

// Customer carries the identity fields captured at checkout.
type Customer struct {
	Name    string
	Email   string
	Address string
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Email) == "" ||
		strings.TrimSpace(c.Address) == "" {
		return ErrBlankCustomer
	}
	return nil
}

// LineItem is the priced projection of a cart item. It exists only inside
// an Order and is never persisted independently.
type LineItem struct {
	ProductID string
	Title     string
	Quantity  int32
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// NewLineItem prices a single cart entry.
func NewLineItem(productID, title string, quantity int32, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		ProductID: productID,
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt32(quantity)),
	}
}

// Order is the persisted outcome of a successful checkout. It is created
// exactly once and never updated or deleted by this context.
type Order struct {
	ID              string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Items           []LineItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	InvoiceNumber   string
}

// NewOrder aggregates priced line items into an order, deriving subtotal,
// tax, and total. Line items keep their input order.
func NewOrder(customer Customer, items []LineItem, taxRate decimal.Decimal) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	subtotal = subtotal.Round(moneyPlaces)
	tax := subtotal.Mul(taxRate).Round(moneyPlaces)
	total := subtotal.Add(tax).Round(moneyPlaces)
	return &Order{
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		InvoiceNumber:   NewInvoiceNumber(),
	}, nil
}

// NewInvoiceNumber produces a short, checkout-unique display identifier.
// The source system truncated "INV-<id>" to its last 8 characters, which
// hid the prefix; here the prefix stays visible in front of the id suffix.
func NewInvoiceNumber() string {
	id := uuid.NewString()
	return "INV-" + id[len(id)-8:]
}
