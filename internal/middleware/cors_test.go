package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const allowedOrigin = "http://localhost:5173"

func corsHandler() http.Handler {
	return NewCORSMiddleware(allowedOrigin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// Originヘッダーのないリクエストは許可されることを検証
func TestCORSMiddleware_NoOrigin_Allowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestCORSMiddleware_AllowedOrigin_SetsHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != allowedOrigin {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, allowedOrigin)
	}
}

// 許可オリジンと一致しないOriginは403で拒否されることを検証
func TestCORSMiddleware_MismatchedOrigin_Rejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/games", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestCORSMiddleware_Preflight_Returns204(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := httptest.NewRecorder()
	corsHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
