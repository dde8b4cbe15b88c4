package shopserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/dmartlabs/shopping-api/internal/domains/catalog/application"
	catalogports "github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
	apierrors "github.com/dmartlabs/shopping-api/internal/shared/errors"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Post /api/products
// Add a new product to the catalog
func (api *CatalogAPI) AddProduct(c *gin.Context) {
	var payload cataloghttpmapper.MutationProduct
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := cataloghttpmapper.ToDomainProduct(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	saved, err := api.service.AddProduct(c.Request.Context(), product)
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": saved.ID})
}

// Get /api/products
// List all catalog products
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainProductList(products))
}

func respondCatalogServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		respondProblem(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, catalogports.ErrNotFound):
		respondProblem(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	default:
		respondProblem(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}
