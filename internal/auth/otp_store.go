package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisResetStore keeps OTP state and reset tokens in redis under TTLs, so
// stale reset flows disappear without any cleanup job. The code and its
// attempt budget live in separate keys; the budget is spent with DECR so
// concurrent verification requests cannot mint extra guesses.
type RedisResetStore struct {
	client        *redis.Client
	otpTTL        time.Duration
	resetTokenTTL time.Duration
}

func NewRedisResetStore(client *redis.Client, otpTTL, resetTokenTTL time.Duration) *RedisResetStore {
	return &RedisResetStore{
		client:        client,
		otpTTL:        otpTTL,
		resetTokenTTL: resetTokenTTL,
	}
}

func otpCodeKey(email string) string {
	return fmt.Sprintf("storefront:otp:code:%s", email)
}

func otpAttemptsKey(email string) string {
	return fmt.Sprintf("storefront:otp:attempts:%s", email)
}

func resetTokenKey(tok string) string {
	return fmt.Sprintf("storefront:reset:%s", tok)
}

func (s *RedisResetStore) PutCode(ctx context.Context, email, code string, maxAttempts int) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, otpCodeKey(email), code, s.otpTTL)
	pipe.Set(ctx, otpAttemptsKey(email), maxAttempts, s.otpTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("storing otp code: %w", err)
	}
	return nil
}

func (s *RedisResetStore) Code(ctx context.Context, email string) (string, error) {
	val, err := s.client.Get(ctx, otpCodeKey(email)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading otp code: %w", err)
	}
	return val, nil
}

// SpendAttempt consumes one guess from the code's attempt budget and returns
// how many remain. A negative result means the budget was already exhausted.
// The attempt key shares the code's TTL, so spending never extends it.
func (s *RedisResetStore) SpendAttempt(ctx context.Context, email string) (int, error) {
	remaining, err := s.client.Decr(ctx, otpAttemptsKey(email)).Result()
	if err != nil {
		return 0, fmt.Errorf("spending otp attempt: %w", err)
	}
	return int(remaining), nil
}

func (s *RedisResetStore) DeleteCode(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpCodeKey(email), otpAttemptsKey(email)).Err()
}

func (s *RedisResetStore) PutResetToken(ctx context.Context, tok, email string) error {
	return s.client.Set(ctx, resetTokenKey(tok), email, s.resetTokenTTL).Err()
}

// ConsumeResetToken atomically reads and deletes a reset token, returning the
// email it was issued for, or "" when unknown or expired.
func (s *RedisResetStore) ConsumeResetToken(ctx context.Context, tok string) (string, error) {
	val, err := s.client.GetDel(ctx, resetTokenKey(tok)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("consuming reset token: %w", err)
	}
	return val, nil
}
