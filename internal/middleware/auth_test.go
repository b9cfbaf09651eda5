package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornBrian/ViralCart/internal/auth"
)

func adminHandler(t *testing.T, tokenHash string) http.Handler {
	t.Helper()

	cfg := AdminAuthConfig{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		TokenHash: tokenHash,
	}
	return AdminAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminAuth(t *testing.T) {
	const token = "vc_admin_test_token"

	hash, err := auth.HashToken(token)
	if err != nil {
		t.Fatalf("HashToken failed: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			header:     "Authorization",
			value:      "Bearer not-the-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer without prefix ignored",
			header:     "Authorization",
			value:      token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid bearer token",
			header:     "Authorization",
			value:      "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid admin token header",
			header:     "X-Admin-Token",
			value:      token,
			wantStatus: http.StatusOK,
		},
	}

	handler := adminHandler(t, hash)

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := rec.Header().Get("Content-Type"); got != "application/json" {
					t.Errorf("Content-Type = %q, want application/json", got)
				}
			}
		})
	}
}

func TestAdminAuthMalformedHash(t *testing.T) {
	t.Parallel()

	handler := adminHandler(t, "not-a-phc-hash")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	req.Header.Set("Authorization", "Bearer whatever")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
