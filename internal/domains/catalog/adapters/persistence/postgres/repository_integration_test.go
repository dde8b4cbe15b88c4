//go:build integration
// +build integration

// To enable gopls support for this file, add the following to your VSCode settings.json:
// "gopls": {
//   "buildFlags": ["-tags=integration"]
// }

package postgres

import (
	"context"
	"fmt"
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

	"github.com/dmartlabs/shopping-api/internal/domains/catalog/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/catalog/ports"
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

func TestPostgresRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct("", "Laptop", "14-inch workstation", decimal.NewFromFloat(999.99))
	require.NoError(t, err)

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, "Laptop", saved.Title)

	retrieved, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", retrieved.Title)
	assert.Equal(t, "14-inch workstation", retrieved.Description)
	assert.True(t, retrieved.Price.Equal(decimal.NewFromFloat(999.99)))
}

func TestPostgresRepository_SaveUpdatesExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct("", "Keyboard", "", decimal.NewFromFloat(49.00))
	require.NoError(t, err)
	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)

	saved.Price = decimal.NewFromFloat(39.00)
	saved.Description = "mechanical, discounted"
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	retrieved, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, retrieved.Price.Equal(decimal.NewFromFloat(39.00)))
	assert.Equal(t, "mechanical, discounted", retrieved.Description)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPostgresRepository_FindByIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for i := 1; i <= 3; i++ {
		product, err := domain.NewProduct("", fmt.Sprintf("Product %d", i), "", decimal.NewFromInt(int64(i)))
		require.NoError(t, err)
		saved, err := repo.Save(ctx, product)
		require.NoError(t, err)
		ids = append(ids, saved.ID)
	}

	found, err := repo.FindByIDs(ctx, []string{ids[0], ids[2], "missing"})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
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

func TestPostgresRepository_ListOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		product, err := domain.NewProduct("", title, "", decimal.NewFromInt(10))
		require.NoError(t, err)
		_, err = repo.Save(ctx, product)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, title := range titles {
		assert.Equal(t, title, all[i].Title)
	}
}
