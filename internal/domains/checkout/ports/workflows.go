package ports

import (
	"context"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
)

// WorkflowOrchestrator exposes durable workflow operations for the checkout
// bounded context.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error)
}
