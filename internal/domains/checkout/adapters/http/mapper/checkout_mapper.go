package mapper

import (
	oapitypes "github.com/oapi-codegen/runtime/types"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	checkoutdomain "github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
)

// CartItemPayload is a single cart entry on the wire.
type CartItemPayload struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required"`
}

// CheckoutRequest is the transport payload accepted by the checkout endpoint.
type CheckoutRequest struct {
	CustomerName    string            `json:"customer_name" binding:"required"`
	CustomerEmail   oapitypes.Email   `json:"customer_email" binding:"required"`
	CustomerAddress string            `json:"customer_address" binding:"required"`
	Items           []CartItemPayload `json:"items" binding:"required,min=1"`
}

// LineItemPayload is the priced cart entry returned to clients.
type LineItemPayload struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int32   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// CheckoutResponse mirrors the persisted order summary.
type CheckoutResponse struct {
	OrderID       string            `json:"order_id"`
	InvoiceNumber string            `json:"invoice_number"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	Items         []LineItemPayload `json:"items"`
}

// ToCheckoutInput converts the transport request into the use-case command.
func ToCheckoutInput(payload CheckoutRequest) checkouttypes.CheckoutInput {
	items := make([]checkoutdomain.CartItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, checkoutdomain.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return checkouttypes.CheckoutInput{
		CustomerName:    payload.CustomerName,
		CustomerEmail:   string(payload.CustomerEmail),
		CustomerAddress: payload.CustomerAddress,
		Items:           items,
	}
}

// FromCheckoutResult converts the use-case result to the transport shape.
func FromCheckoutResult(result *checkouttypes.CheckoutResult) CheckoutResponse {
	if result == nil {
		return CheckoutResponse{}
	}
	items := make([]LineItemPayload, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, LineItemPayload{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			LineTotal: item.LineTotal.InexactFloat64(),
		})
	}
	return CheckoutResponse{
		OrderID:       result.OrderID,
		InvoiceNumber: result.InvoiceNumber,
		Subtotal:      result.Subtotal.InexactFloat64(),
		Tax:           result.Tax.InexactFloat64(),
		Total:         result.Total.InexactFloat64(),
		Items:         items,
	}
}
