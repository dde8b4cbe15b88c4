package catalog

import (
	"context"

	catalogports "github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
	checkoutports "github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

var _ checkoutports.ProductFinder = (*Finder)(nil)

// Finder adapts the catalog service to the narrow product view checkout
// consumes.
type Finder struct {
	catalog catalogports.Service
}

func NewFinder(catalog catalogports.Service) *Finder {
	return &Finder{catalog: catalog}
}

func (f *Finder) FindByIDs(ctx context.Context, ids []string) ([]checkoutports.CatalogProduct, error) {
	products, err := f.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make([]checkoutports.CatalogProduct, 0, len(products))
	for _, product := range products {
		result = append(result, checkoutports.CatalogProduct{
			ID:    product.ID,
			Title: product.Title,
			Price: product.Price,
		})
	}
	return result, nil
}
