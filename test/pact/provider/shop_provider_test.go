//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/dmartlabs/shopping-api/test/pact"

	shopserver "github.com/dmartlabs/shopping-api/go"
	catalogmemory "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/dmartlabs/shopping-api/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/dmartlabs/shopping-api/internal/domains/catalog/application"
	catalogdomain "github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
	checkoutcatalog "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/catalog"
	checkoutmemory "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/memory"
	checkoutobs "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/observability"
	checkoutworkflows "github.com/dmartlabs/shopping-api/internal/domains/checkout/adapters/workflows"
	checkoutapp "github.com/dmartlabs/shopping-api/internal/domains/checkout/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShoppingProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			return nil, nil
		},
		pacttest.StateProductExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedProduct(t, pacttest.ExistingProductID, "Pact Mechanical Keyboard", 79.99)
			}
			return nil, nil
		},
		pacttest.StateCheckoutSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			if setup {
				app.seedProduct(t, pacttest.ExistingProductID, "Pact Mechanical Keyboard", 79.99)
				app.seedProduct(t, pacttest.SecondProductID, "Pact Desk Mat", 19.99)
			}
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	catalogRepo *catalogmemory.Repository
	server      *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	catalogRepo := catalogmemory.NewRepository()
	catalogService := catalogobs.New(catalogapp.NewService(catalogRepo))

	checkoutService := checkoutobs.New(checkoutapp.NewService(
		checkoutcatalog.NewFinder(catalogService),
		checkoutmemory.NewRepository(),
	))
	workflows := checkoutworkflows.NewInlineCheckoutWorkflows(checkoutService)

	handlers := shopserver.ApiHandleFunctions{
		CatalogAPI:  shopserver.NewCatalogAPI(catalogService),
		CheckoutAPI: shopserver.NewCheckoutAPI(checkoutService, workflows),
		SystemAPI:   shopserver.NewSystemAPI(nil),
	}

	server := httptest.NewServer(shopserver.NewRouter(handlers))
	t.Cleanup(server.Close)

	return &contractProviderApp{
		catalogRepo: catalogRepo,
		server:      server,
	}
}

func (a *contractProviderApp) seedProduct(t testing.TB, id, title string, price float64) {
	t.Helper()
	product, err := catalogdomain.NewProduct(id, title, "", decimal.NewFromFloat(price))
	require.NoError(t, err)
	_, err = a.catalogRepo.Save(context.Background(), product)
	require.NoError(t, err)
}
