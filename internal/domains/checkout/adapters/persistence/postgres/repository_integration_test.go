//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
	"github.com/dmartlabs/shopping-api/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("shopping_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func sampleOrder(t *testing.T) *domain.Order {
	t.Helper()
	customer := domain.Customer{Name: "Jane Doe", Email: "jane@example.com", Address: "1 Main St"}
	items := []domain.LineItem{
		domain.NewLineItem("prod-1", "Widget", 2, decimal.NewFromFloat(10.00)),
		domain.NewLineItem("prod-2", "Gadget", 1, decimal.NewFromFloat(5.00)),
	}
	order, err := domain.NewOrder(customer, items, domain.DefaultTaxRate)
	require.NoError(t, err)
	return order
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)), "expected %s, got %s", expected, actual)
}

func TestPostgresRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleOrder(t))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.InvoiceNumber)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", retrieved.CustomerName)
	assert.Equal(t, "jane@example.com", retrieved.CustomerEmail)
	assert.Equal(t, "1 Main St", retrieved.CustomerAddress)
	assert.Equal(t, created.InvoiceNumber, retrieved.InvoiceNumber)
	assertDecimal(t, "25.00", retrieved.Subtotal)
	assertDecimal(t, "2.50", retrieved.Tax)
	assertDecimal(t, "27.50", retrieved.Total)
}

func TestPostgresRepository_RoundTripsLineItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleOrder(t))
	require.NoError(t, err)

	retrieved, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Items, 2)

	first := retrieved.Items[0]
	assert.Equal(t, "prod-1", first.ProductID)
	assert.Equal(t, "Widget", first.Title)
	assert.Equal(t, int32(2), first.Quantity)
	assertDecimal(t, "10.00", first.UnitPrice)
	assertDecimal(t, "20.00", first.LineTotal)

	second := retrieved.Items[1]
	assert.Equal(t, "prod-2", second.ProductID)
	assertDecimal(t, "5.00", second.LineTotal)
}

func TestPostgresRepository_CreateAssignsDistinctIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleOrder(t))
	require.NoError(t, err)
	second, err := repo.Create(ctx, sampleOrder(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
}

func TestPostgresRepository_GetByIDNotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
