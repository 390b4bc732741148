package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eshabeddings/catalog-service/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminSession_ValidToken(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	token, err := sessions.Issue("admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	handler := AdminSession(sessions)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestAdminSession_MissingHeader(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	handler := AdminSession(sessions)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestAdminSession_MalformedHeader(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	handler := AdminSession(sessions)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

func TestAdminSession_RevokedToken(t *testing.T) {
	sessions := session.NewManager("test-secret", time.Hour)
	token, err := sessions.Issue("admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if err := sessions.Revoke(token); err != nil {
		t.Fatalf("failed to revoke token: %v", err)
	}

	handler := AdminSession(sessions)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}
