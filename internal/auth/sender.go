package auth

import (
	"context"

	"go.uber.org/zap"
)

// LogSender records OTP dispatches instead of delivering them. Real delivery
// goes through the store's mail provider, which is outside this service.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendPasswordResetCode(ctx context.Context, email, code string) error {
	s.logger.Info("password reset code dispatched",
		zap.String("email", email),
		zap.Int("codeLength", len(code)),
	)
	return nil
}
