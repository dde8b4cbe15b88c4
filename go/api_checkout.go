package shopserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	checkouthttpmapper "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/http/mapper"
	checkoutapp "github.com/dmartlabs/shopping-api/internal/domains/checkout/application"
	checkouttypes "github.com/dmartlabs/shopping-api/internal/domains/checkout/application/types"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
	apierrors "github.com/dmartlabs/shopping-api/internal/shared/errors"
)

// CheckoutAPI wires HTTP transport with the checkout bounded context
// service and workflows.
type CheckoutAPI struct {
	service   checkoutports.Service
	workflows checkoutports.WorkflowOrchestrator
}

// NewCheckoutAPI creates a CheckoutAPI backed by the provided service.
func NewCheckoutAPI(service checkoutports.Service, workflows checkoutports.WorkflowOrchestrator) CheckoutAPI {
	return CheckoutAPI{service: service, workflows: workflows}
}

// Post /api/checkout
// Price the cart and persist an order
func (api *CheckoutAPI) Checkout(c *gin.Context) {
	var payload checkouthttpmapper.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := api.placeOrder(c.Request.Context(), checkouthttpmapper.ToCheckoutInput(payload))
	if err != nil {
		respondCheckoutServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkouthttpmapper.FromCheckoutResult(result))
}

func (api *CheckoutAPI) placeOrder(ctx context.Context, input checkouttypes.CheckoutInput) (*checkouttypes.CheckoutResult, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, input)
	}
	return api.service.Checkout(ctx, input)
}

func respondCheckoutServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkoutapp.ErrProductsNotFound):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, checkoutapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
