package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	checkoutactivities "github.com/dmartlabs/shopping-api/internal/platform/temporal/activities/checkout"
)

// RunOrderPlacementSequence executes the activity that prices the cart and
// persists the order. The checkout contract is single-attempt: a failed
// placement is never retried, so the retry policy caps at one attempt.
func RunOrderPlacementSequence(ctx workflow.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "cartItems", len(input.Items))
	placeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}

	var result checkouttypes.CheckoutResult
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, placeOptions), checkoutactivities.PlaceOrderActivityName, input).Get(ctx, &result)
	if err != nil {
		logger.Error("order placement sequence failed", "error", err)
		return nil, err
	}
	logger.Info("order placement sequence persisted", "orderId", result.OrderID)
	return &result, nil
}
