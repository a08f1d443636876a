package domain

import "time"

type User struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Address      *string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
	RoleAdmin    = "ADMIN"
)

// IsStaff reports whether the user may see orders of other customers.
func (u User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
