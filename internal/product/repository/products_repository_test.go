package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/testutil"
)

// Unit Tests

func TestNewMySQLRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func seedProducts(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO Product (name, description, price, stock, category, imageUrl, isActive, isDeleted, stockeable)
		VALUES ('Mohinga', 'Fish noodle soup', 4.50, 20, 'soup', '', 1, 0, 1),
		       ('Shan Noodles', 'Rice noodles', 5.75, 15, 'noodles', '', 1, 0, 1),
		       ('Tea Leaf Salad', 'Laphet thoke', 6.25, NULL, 'salad', '', 1, 0, 0),
		       ('Old Special', 'Retired dish', 9.99, 0, 'soup', '', 0, 0, 1),
		       ('Deleted Dish', 'Gone', 1.00, 0, 'soup', '', 1, 1, 1)
	`)
	require.NoError(t, err)
}

func TestRepository_List_ActiveOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	products, total, err := repo.List(context.Background(), domain.ProductFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsActive)
		assert.False(t, p.IsDeleted)
	}
}

func TestRepository_List_IncludeInactive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	_, total, err := repo.List(context.Background(), domain.ProductFilter{IncludeInactive: true}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestRepository_List_CategoryFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	products, total, err := repo.List(context.Background(), domain.ProductFilter{Category: "soup"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Mohinga", products[0].Name)
}

func TestRepository_List_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	products, total, err := repo.List(context.Background(), domain.ProductFilter{Search: "noodle"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Shan Noodles", products[0].Name)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_FindByID_DeletedHidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	var deletedID int
	err := db.QueryRow(`SELECT id FROM Product WHERE isDeleted = 1`).Scan(&deletedID)
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), deletedID)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_AdjustStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	var id int
	err := db.QueryRow(`SELECT id FROM Product WHERE name = 'Mohinga'`).Scan(&id)
	require.NoError(t, err)

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	err = repo.AdjustStock(context.Background(), tx, id, -3)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 17, *p.Stock)
}

func TestRepository_InsertAndUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRepository(db)

	stock := 5
	id, err := repo.Insert(context.Background(), domain.Product{
		Name:       "Coconut Noodles",
		Price:      5.25,
		Stock:      &stock,
		Category:   "noodles",
		IsActive:   true,
		Stockeable: true,
	})
	require.NoError(t, err)
	assert.Greater(t, id, 0)

	p, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	p.Price = 5.50
	require.NoError(t, repo.Update(context.Background(), *p))

	updated, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5.50, updated.Price)
}

func TestRepository_SoftDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seedProducts(t, db)
	repo := NewMySQLRepository(db)

	var id int
	err := db.QueryRow(`SELECT id FROM Product WHERE name = 'Mohinga'`).Scan(&id)
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(context.Background(), id))

	_, err = repo.FindByID(context.Background(), id)
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.SoftDelete(context.Background(), id)
	require.Error(t, err)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
