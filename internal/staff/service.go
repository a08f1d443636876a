package staff

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

const tempPasswordLength = 16

type staffService struct {
	users      UserRepository
	sessions   SessionRevoker
	bcryptCost int
	logger     *zap.Logger
}

func NewService(users UserRepository, sessions SessionRevoker, bcryptCost int, logger *zap.Logger) Service {
	return &staffService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *staffService) CreateStaff(ctx context.Context, input CreateStaffInput) (*StaffAccountDTO, error) {
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflictError("email already registered")
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	password := input.Password
	tempPassword := ""
	if password == "" {
		generated, err := generateTempPassword()
		if err != nil {
			return nil, apperrors.NewInternalError("generating password", err)
		}
		password = generated
		tempPassword = generated
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     true,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("staff account created", zap.Int("userId", id), zap.String("role", input.Role))

	dto := toStaffDTO(user)
	dto.TempPassword = tempPassword
	return &dto, nil
}

func (s *staffService) ListStaff(ctx context.Context, page commons.Pagination) ([]StaffAccountDTO, commons.Pagination, error) {
	users, total, err := s.users.ListByRoles(ctx,
		[]string{domain.RoleStaff, domain.RoleAdmin}, page.Limit(), page.Offset())
	if err != nil {
		return nil, page, err
	}

	dtos := make([]StaffAccountDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toStaffDTO(u))
	}
	return dtos, page.WithTotal(total), nil
}

func (s *staffService) SetActive(ctx context.Context, id int, active bool) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsStaff() {
		return apperrors.NewNotFoundError("staff account not found")
	}

	if err := s.users.UpdateActive(ctx, id, active); err != nil {
		return err
	}

	// A deactivated account must be logged out everywhere immediately.
	if !active {
		if err := s.sessions.RevokeAll(ctx, id); err != nil {
			s.logger.Warn("revoking sessions for deactivated staff", zap.Int("userId", id), zap.Error(err))
		}
	}

	s.logger.Info("staff account active flag changed", zap.Int("userId", id), zap.Bool("active", active))
	return nil
}

func (s *staffService) ResetPassword(ctx context.Context, id int) (string, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !user.IsStaff() {
		return "", apperrors.NewNotFoundError("staff account not found")
	}

	password, err := generateTempPassword()
	if err != nil {
		return "", apperrors.NewInternalError("generating password", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", apperrors.NewInternalError("hashing password", err)
	}

	if err := s.users.UpdatePassword(ctx, id, string(hash)); err != nil {
		return "", err
	}

	if err := s.sessions.RevokeAll(ctx, id); err != nil {
		s.logger.Warn("revoking sessions after staff password reset", zap.Int("userId", id), zap.Error(err))
	}

	s.logger.Info("staff password reset by admin", zap.Int("userId", id))
	return password, nil
}

func generateTempPassword() (string, error) {
	tok, err := token.NewToken()
	if err != nil {
		return "", err
	}
	return tok[:tempPasswordLength], nil
}
