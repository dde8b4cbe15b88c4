package mapper

import (
	"github.com/shopspring/decimal"

	catalogdomain "github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
)

// MutationProduct is the transport payload accepted when creating a product.
// A missing price defaults to zero.
type MutationProduct struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// Product is the transport representation returned to clients.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// ToDomainProduct converts a transport mutation into the catalog domain model.
func ToDomainProduct(payload MutationProduct) (*catalogdomain.Product, error) {
	price := decimal.Zero
	if payload.Price != nil {
		price = decimal.NewFromFloat(*payload.Price)
	}
	return catalogdomain.NewProduct("", payload.Title, payload.Description, price)
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *catalogdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price.InexactFloat64(),
	}
}

// FromDomainProductList maps a slice of domain products.
func FromDomainProductList(products []*catalogdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
