package ports

import (
	"context"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
)

// Service exposes the checkout use case to adapters.
type Service interface {
	Checkout(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error)
}
