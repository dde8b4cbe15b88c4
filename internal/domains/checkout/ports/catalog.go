package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogProduct is the narrow product view checkout needs for pricing.
type CatalogProduct struct {
	ID    string
	Title string
	Price decimal.Decimal
}

// ProductFinder resolves product references against the catalog collaborator
// in a single batched lookup. Unknown references are absent from the result.
type ProductFinder interface {
	FindByIDs(ctx context.Context, ids []string) ([]CatalogProduct, error)
}
