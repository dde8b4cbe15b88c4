package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
)

type fakeCatalogRepo struct {
	products map[string]*domain.Product
	nextID   int
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{products: map[string]*domain.Product{}}
}

func (f *fakeCatalogRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	copy := *product
	if copy.ID == "" {
		f.nextID++
		copy.ID = string(rune('a' + f.nextID - 1))
	}
	f.products[copy.ID] = &copy
	return &copy, nil
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCatalogRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	var result []*domain.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			copy := *p
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) List(_ context.Context) ([]*domain.Product, error) {
	var list []*domain.Product
	for _, p := range f.products {
		copy := *p
		list = append(list, &copy)
	}
	return list, nil
}

func TestAddProduct_AssignsIdentifier(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	product, err := domain.NewProduct("", "Basmati Rice 5kg", "long grain", decimal.NewFromFloat(12.50))
	require.NoError(t, err)

	saved, err := svc.AddProduct(context.Background(), product)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, "Basmati Rice 5kg", saved.Title)
}

func TestAddProduct_EmptyTitle(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	product := &domain.Product{Title: "  ", Price: decimal.NewFromInt(1)}
	_, err := svc.AddProduct(context.Background(), product)
	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddProduct_NegativePrice(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	product := &domain.Product{Title: "Ghee 1L", Price: decimal.NewFromFloat(-0.01)}
	_, err := svc.AddProduct(context.Background(), product)
	require.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestFindByIDs_ResolvesOnlyKnownProducts(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	saved, err := svc.AddProduct(context.Background(), &domain.Product{Title: "Atta 10kg", Price: decimal.NewFromInt(8)})
	require.NoError(t, err)

	resolved, err := svc.FindByIDs(context.Background(), []string{saved.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Equal(t, saved.ID, resolved[0].ID)
}

func TestFindByIDs_EmptySet(t *testing.T) {
	svc := NewService(newFakeCatalogRepo())
	resolved, err := svc.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, resolved)
}
