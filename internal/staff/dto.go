package staff

import "github.com/ChoneChone22/bambite-storefront/internal/domain"

type CreateStaffInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Password  string  `json:"password"`
	Role      string  `json:"role"`
}

type StaffAccountDTO struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"isActive"`

	// TempPassword is only set on creation when the admin did not supply
	// a password; it is never persisted in clear.
	TempPassword string `json:"tempPassword,omitempty"`
}

type ListStaffResponse struct {
	Staff    []StaffAccountDTO `json:"staff"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int               `json:"total"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

type ResetPasswordResponse struct {
	TempPassword string `json:"tempPassword"`
}

func toStaffDTO(u domain.User) StaffAccountDTO {
	return StaffAccountDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}
