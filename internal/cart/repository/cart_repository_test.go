package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChoneChone22/bambite-storefront/internal/testutil"
)

// Unit Tests

func TestNewMySQLCartRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLCartRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestCartRepository_FindOrCreateByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCartRepository(db)

	cart, err := repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cart.UserID)
	assert.True(t, cart.IsEmpty())

	again, err := repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)
}

func TestCartRepository_UpsertItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCartRepository(db)

	cart, err := repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)

	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 3, 2))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 3, 5))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 9, 1))

	cart, err = repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 5, cart.Quantity(3))
	assert.Equal(t, 1, cart.Quantity(9))
}

func TestCartRepository_RemoveItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCartRepository(db)

	cart, err := repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 3, 2))

	require.NoError(t, repo.RemoveItem(context.Background(), cart.ID, 3))

	cart, err = repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartRepository_ClearTx(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCartRepository(db)

	cart, err := repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 3, 2))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, 9, 1))

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.ClearTx(context.Background(), tx, cart.ID))
	require.NoError(t, tx.Commit())

	cart, err = repo.FindOrCreateByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}
