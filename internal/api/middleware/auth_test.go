package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ottstream/mylist/internal/auth"
)

const testSecret = "test-secret"

func claimsEcho(t *testing.T, wantClaims bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetClaims(r.Context())
		if ok != wantClaims {
			t.Errorf("expected claims present=%v, got %v", wantClaims, ok)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestOptionalAuth_NoHeaderPassesThrough(t *testing.T) {
	handler := OptionalAuth(testSecret)(claimsEcho(t, false))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken("user-1", "demo", "demo@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	handler := OptionalAuth(testSecret)(claimsEcho(t, true))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestOptionalAuth_RejectsBadTokens(t *testing.T) {
	expired, err := auth.GenerateToken("user-1", "demo", "demo@example.com", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name          string
		authorization string
	}{
		{name: "malformed header", authorization: "Token abc"},
		{name: "empty bearer token", authorization: "Bearer "},
		{name: "garbage token", authorization: "Bearer not.a.token"},
		{name: "expired token", authorization: "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := OptionalAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run for a rejected token")
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", tt.authorization)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rec.Code)
			}
		})
	}
}

func TestGetClaims_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetClaims(req.Context()); ok {
		t.Error("expected no claims in a bare context")
	}
}
