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

func TestNewMySQLUserRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertUser(t *testing.T, repo *MySQLUserRepository, email, role string) int {
	t.Helper()

	id, err := repo.Insert(context.Background(), domain.User{
		FirstName:    "Aye",
		LastName:     "Chan",
		Email:        email,
		PasswordHash: "$2a$04$fakehashfortesting",
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)
	return id
}

func TestUserRepository_InsertAndFindByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)
	id := insertUser(t, repo, "aye@example.com", domain.RoleCustomer)

	user, err := repo.FindByEmail(context.Background(), "aye@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.True(t, user.IsActive)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)
	id := insertUser(t, repo, "aye@example.com", domain.RoleCustomer)

	require.NoError(t, repo.UpdatePassword(context.Background(), id, "$2a$04$newhash"))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$newhash", user.PasswordHash)
}

func TestUserRepository_UpdateActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)
	id := insertUser(t, repo, "su@example.com", domain.RoleStaff)

	require.NoError(t, repo.UpdateActive(context.Background(), id, false))

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserRepository_ListByRoles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLUserRepository(db)
	insertUser(t, repo, "customer@example.com", domain.RoleCustomer)
	insertUser(t, repo, "staff@example.com", domain.RoleStaff)
	insertUser(t, repo, "admin@example.com", domain.RoleAdmin)

	users, total, err := repo.ListByRoles(context.Background(),
		[]string{domain.RoleStaff, domain.RoleAdmin}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.True(t, u.IsStaff())
	}
}
