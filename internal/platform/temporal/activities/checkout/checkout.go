package checkout

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

const (
	// PlaceOrderActivityName prices a cart and persists the resulting order.
	PlaceOrderActivityName = "checkout.activities.PlaceOrder"
)

// Activities groups activities that operate on the checkout bounded context.
type Activities struct {
	service checkoutports.Service
}

// NewActivities wires the checkout service into the Temporal activities bundle.
func NewActivities(service checkoutports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the checkout use case and returns the persisted order summary.
func (a *Activities) PlaceOrder(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized")
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "cartItems", len(input.Items))
	result, err := a.service.Checkout(ctx, input)
	if err != nil {
		logger.Error("PlaceOrder activity failed", "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", result.OrderID)
	return result, nil
}
