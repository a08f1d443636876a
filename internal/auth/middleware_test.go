package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	"github.com/ChoneChone22/bambite-storefront/internal/server/httpx"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

func okHandler(calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_BearerToken(t *testing.T) {
	sessions := &mockSessionManager{
		ResolveFunc: func(ctx context.Context, tok string) (*token.Session, error) {
			if tok != "valid-token" {
				t.Errorf("expected valid-token, got %q", tok)
			}
			return &token.Session{UserID: 7, Role: domain.RoleCustomer}, nil
		},
	}

	mw := NewMiddleware(sessions, zap.NewNop())

	var principal Principal
	handler := mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ = PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if principal.UserID != 7 {
		t.Errorf("expected principal user 7, got %d", principal.UserID)
	}
	if principal.Role != domain.RoleCustomer {
		t.Errorf("expected CUSTOMER role, got %s", principal.Role)
	}
}

func TestRequireAuth_CookieFallback(t *testing.T) {
	sessions := &mockSessionManager{
		ResolveFunc: func(ctx context.Context, tok string) (*token.Session, error) {
			if tok != "cookie-token" {
				t.Errorf("expected cookie-token, got %q", tok)
			}
			return &token.Session{UserID: 7, Role: domain.RoleCustomer}, nil
		},
	}

	mw := NewMiddleware(sessions, zap.NewNop())

	calls := 0
	handler := mw.RequireAuth(okHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if calls != 1 {
		t.Errorf("expected handler to be called once, got %d", calls)
	}
}

func TestRequireAuth_MissingToken(t *testing.T) {
	mw := NewMiddleware(&mockSessionManager{}, zap.NewNop())

	calls := 0
	handler := mw.RequireAuth(okHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler must not run without a token")
	}

	var body httpx.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Error != "UNAUTHORIZED" {
		t.Errorf("expected UNAUTHORIZED error code, got %q", body.Error)
	}
	if body.Message == "" {
		t.Errorf("expected a message in the error body")
	}
}

func TestRequireAuth_ExpiredSession(t *testing.T) {
	sessions := &mockSessionManager{
		ResolveFunc: func(ctx context.Context, tok string) (*token.Session, error) {
			return nil, nil
		},
	}

	mw := NewMiddleware(sessions, zap.NewNop())

	calls := 0
	handler := mw.RequireAuth(okHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler must not run with an expired session")
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	mw := NewMiddleware(&mockSessionManager{}, zap.NewNop())

	calls := 0
	handler := mw.RequireRole(domain.RoleStaff, domain.RoleAdmin)(okHandler(&calls))

	principal := Principal{UserID: 3, Role: domain.RoleStaff}
	req := httptest.NewRequest(http.MethodGet, "/api/staff/orders", nil)
	req = req.WithContext(context.WithValue(req.Context(), principalKey, principal))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if calls != 1 {
		t.Errorf("expected handler to run")
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	mw := NewMiddleware(&mockSessionManager{}, zap.NewNop())

	calls := 0
	handler := mw.RequireRole(domain.RoleAdmin)(okHandler(&calls))

	principal := Principal{UserID: 7, Role: domain.RoleCustomer}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/staff", nil)
	req = req.WithContext(context.WithValue(req.Context(), principalKey, principal))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler must not run for the wrong role")
	}

	var body httpx.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Error != "FORBIDDEN" {
		t.Errorf("expected FORBIDDEN error code, got %q", body.Error)
	}
}

func TestRequireRole_NoPrincipal(t *testing.T) {
	mw := NewMiddleware(&mockSessionManager{}, zap.NewNop())

	calls := 0
	handler := mw.RequireRole(domain.RoleAdmin)(okHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/staff", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if calls != 0 {
		t.Errorf("handler must not run without a principal")
	}
}
