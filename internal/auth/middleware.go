package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
)

// SessionCookie is the cookie fallback for browser clients that cannot set
// an Authorization header.
const SessionCookie = "bambite_session"

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID int
	Role   string
	Token  string
}

func (p Principal) IsStaff() bool {
	return p.Role == domain.RoleStaff || p.Role == domain.RoleAdmin
}

// PrincipalFrom returns the authenticated principal, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// Middleware resolves session tokens and guards routes by role.
type Middleware struct {
	sessions SessionManager
	logger   *zap.Logger
}

func NewMiddleware(sessions SessionManager, logger *zap.Logger) *Middleware {
	return &Middleware{sessions: sessions, logger: logger}
}

// RequireAuth rejects requests without a valid session token. The token is
// taken from the Authorization header, falling back to the session cookie.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := extractToken(r)
		if tok == "" {
			writeUnauthorized(w, "missing session token")
			return
		}

		sess, err := m.sessions.Resolve(r.Context(), tok)
		if err != nil {
			m.logger.Error("resolving session", zap.Error(err))
			writeUnauthorized(w, "session could not be verified")
			return
		}
		if sess == nil {
			writeUnauthorized(w, "invalid or expired session")
			return
		}

		principal := Principal{UserID: sess.UserID, Role: sess.Role, Token: tok}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only principals with one of the given roles. Must be
// mounted after RequireAuth.
func (m *Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFrom(r.Context())
			if !ok {
				writeUnauthorized(w, "missing session token")
				return
			}
			for _, role := range roles {
				if principal.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeForbidden(w, "insufficient role")
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
		Error:   "UNAUTHORIZED",
		Message: message,
	})
}

func writeForbidden(w http.ResponseWriter, message string) {
	httpx.WriteJSON(w, http.StatusForbidden, httpx.ErrorResponse{
		Error:   "FORBIDDEN",
		Message: message,
	})
}
