package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ChoneChone22/bambite-storefront/internal/config"
	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

type authService struct {
	users    UserRepository
	sessions SessionManager
	resets   ResetStore
	sender   Sender
	cfg      config.AuthConfig
	logger   *zap.Logger
}

func NewService(
	users UserRepository,
	sessions SessionManager,
	resets ResetStore,
	sender Sender,
	cfg config.AuthConfig,
	logger *zap.Logger,
) Service {
	return &authService{
		users:    users,
		sessions: sessions,
		resets:   resets,
		sender:   sender,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewConflictError("email already registered")
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		IsActive:     true,
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("customer registered", zap.Int("userId", id))

	dto := toUserDTO(user)
	return &dto, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("account is deactivated")
	}

	tok, err := s.sessions.Issue(ctx, user.ID, user.Role)
	if err != nil {
		return nil, apperrors.NewInternalError("issuing session", err)
	}

	s.logger.Info("user logged in", zap.Int("userId", user.ID), zap.String("role", user.Role))

	return &LoginResult{Token: tok, User: toUserDTO(*user)}, nil
}

func (s *authService) Logout(ctx context.Context, tok string) error {
	return s.sessions.Revoke(ctx, tok)
}

func (s *authService) CurrentUser(ctx context.Context, userID int) (*UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toUserDTO(*user)
	return &dto, nil
}

// RequestReset starts an OTP reset flow. Unknown emails succeed silently so
// the endpoint cannot be used to enumerate accounts.
func (s *authService) RequestReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			s.logger.Info("reset requested for unknown email")
			return nil
		}
		return err
	}

	code, err := generateOTP(s.cfg.OTPLength)
	if err != nil {
		return apperrors.NewInternalError("generating otp", err)
	}

	if err := s.resets.PutCode(ctx, user.Email, code, s.cfg.OTPMaxAttempts); err != nil {
		return apperrors.NewInternalError("storing otp", err)
	}

	if err := s.sender.SendPasswordResetCode(ctx, user.Email, code); err != nil {
		return apperrors.NewInternalError("sending otp", err)
	}

	s.logger.Info("password reset requested", zap.Int("userId", user.ID))
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	stored, err := s.resets.Code(ctx, email)
	if err != nil {
		return "", apperrors.NewInternalError("reading otp", err)
	}
	if stored == "" {
		return "", apperrors.NewUnauthorizedError("invalid or expired code")
	}

	// The attempt is spent before the comparison so every request, right or
	// wrong, draws from the same budget.
	remaining, err := s.resets.SpendAttempt(ctx, email)
	if err != nil {
		return "", apperrors.NewInternalError("updating otp attempts", err)
	}
	if remaining < 0 {
		if err := s.resets.DeleteCode(ctx, email); err != nil {
			s.logger.Warn("deleting exhausted otp", zap.Error(err))
		}
		return "", apperrors.NewUnauthorizedError("too many attempts, request a new code")
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return "", apperrors.NewUnauthorizedError("invalid or expired code")
	}

	if err := s.resets.DeleteCode(ctx, email); err != nil {
		s.logger.Warn("deleting verified otp", zap.Error(err))
	}

	resetToken, err := token.NewToken()
	if err != nil {
		return "", apperrors.NewInternalError("generating reset token", err)
	}
	if err := s.resets.PutResetToken(ctx, resetToken, email); err != nil {
		return "", apperrors.NewInternalError("storing reset token", err)
	}

	return resetToken, nil
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	email, err := s.resets.ConsumeResetToken(ctx, resetToken)
	if err != nil {
		return apperrors.NewInternalError("consuming reset token", err)
	}
	if email == "" {
		return apperrors.NewUnauthorizedError("invalid or expired reset token")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return apperrors.NewForbiddenError("account is deactivated")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return apperrors.NewInternalError("hashing password", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	// Old sessions must not survive a password reset.
	if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
		s.logger.Warn("revoking sessions after reset", zap.Int("userId", user.ID), zap.Error(err))
	}

	s.logger.Info("password reset completed", zap.Int("userId", user.ID))
	return nil
}

func generateOTP(length int) (string, error) {
	if length <= 0 {
		length = 6
	}
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("reading random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

func toUserDTO(u domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}
