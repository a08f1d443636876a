package staff

import (
	"context"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
)

type Service interface {
	CreateStaff(ctx context.Context, input CreateStaffInput) (*StaffAccountDTO, error)
	ListStaff(ctx context.Context, page commons.Pagination) ([]StaffAccountDTO, commons.Pagination, error)
	SetActive(ctx context.Context, id int, active bool) error
	ResetPassword(ctx context.Context, id int) (string, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (int, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdateActive(ctx context.Context, id int, active bool) error
	ListByRoles(ctx context.Context, roles []string, limit, offset int) ([]domain.User, int, error)
}

type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID int) error
}
