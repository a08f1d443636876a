package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "storefront"

// Session is the principal blob stored behind an opaque token.
type Session struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
}

// Manager issues and resolves opaque session tokens backed by redis. Tokens
// carry no claims themselves; everything lives server-side under a TTL.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{client: client, ttl: ttl}
}

// NewToken returns a 32-byte URL-safe random token.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

func userSessionsKey(userID int) string {
	return fmt.Sprintf("%s:sessions:user:%d", keyPrefix, userID)
}

// Issue creates a session for the user and returns its token.
func (m *Manager) Issue(ctx context.Context, userID int, role string) (string, error) {
	tok, err := NewToken()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(Session{UserID: userID, Role: role})
	if err != nil {
		return "", fmt.Errorf("encoding session: %w", err)
	}

	pipe := m.client.TxPipeline()
	pipe.Set(ctx, sessionKey(tok), payload, m.ttl)
	pipe.SAdd(ctx, userSessionsKey(userID), tok)
	// The membership set outlives individual sessions slightly so RevokeAll
	// can still find stale tokens; it expires alongside the longest session.
	pipe.Expire(ctx, userSessionsKey(userID), m.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	return tok, nil
}

// Resolve looks up a token and refreshes its TTL. Returns nil when the token
// is unknown or expired.
func (m *Manager) Resolve(ctx context.Context, tok string) (*Session, error) {
	val, err := m.client.Get(ctx, sessionKey(tok)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}

	// Sliding expiry: active users stay logged in.
	if err := m.client.Expire(ctx, sessionKey(tok), m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("refreshing session ttl: %w", err)
	}

	return &sess, nil
}

// Revoke deletes a single session.
func (m *Manager) Revoke(ctx context.Context, tok string) error {
	sess, err := m.Resolve(ctx, tok)
	if err != nil {
		return err
	}

	pipe := m.client.TxPipeline()
	pipe.Del(ctx, sessionKey(tok))
	if sess != nil {
		pipe.SRem(ctx, userSessionsKey(sess.UserID), tok)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

// RevokeAll deletes every session of a user. Used after password resets and
// account deactivation.
func (m *Manager) RevokeAll(ctx context.Context, userID int) error {
	toks, err := m.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("listing user sessions: %w", err)
	}

	pipe := m.client.TxPipeline()
	for _, tok := range toks {
		pipe.Del(ctx, sessionKey(tok))
	}
	pipe.Del(ctx, userSessionsKey(userID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoking user sessions: %w", err)
	}
	return nil
}
