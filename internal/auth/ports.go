package auth

import (
	"context"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, tok string) error
	CurrentUser(ctx context.Context, userID int) (*UserDTO, error)
	RequestReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Insert(ctx context.Context, user domain.User) (int, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type SessionManager interface {
	Issue(ctx context.Context, userID int, role string) (string, error)
	Resolve(ctx context.Context, tok string) (*token.Session, error)
	Revoke(ctx context.Context, tok string) error
	RevokeAll(ctx context.Context, userID int) error
}

// ResetStore keeps the transient password-reset state: one pending OTP per
// email, and single-use reset tokens handed out after OTP verification.
// SpendAttempt must consume the guess atomically and report how many remain
// so parallel verification requests share a single budget.
type ResetStore interface {
	PutCode(ctx context.Context, email, code string, maxAttempts int) error
	Code(ctx context.Context, email string) (string, error)
	SpendAttempt(ctx context.Context, email string) (remaining int, err error)
	DeleteCode(ctx context.Context, email string) error
	PutResetToken(ctx context.Context, tok, email string) error
	ConsumeResetToken(ctx context.Context, tok string) (string, error)
}

// Sender delivers password-reset codes. Mail transport is owned by an
// external system; the default implementation only records the dispatch.
type Sender interface {
	SendPasswordResetCode(ctx context.Context, email, code string) error
}
