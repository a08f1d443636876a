package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_IsStaff(t *testing.T) {
	assert.False(t, User{Role: RoleCustomer}.IsStaff())
	assert.True(t, User{Role: RoleStaff}.IsStaff())
	assert.True(t, User{Role: RoleAdmin}.IsStaff())
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Aye Chan", User{FirstName: "Aye", LastName: "Chan"}.FullName())
	assert.Equal(t, "Aye", User{FirstName: "Aye"}.FullName())
	assert.Equal(t, "Chan", User{LastName: "Chan"}.FullName())
	assert.Equal(t, "", User{}.FullName())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleCustomer))
	assert.True(t, ValidRole(RoleStaff))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("MANAGER"))
	assert.False(t, ValidRole("customer"))
}
