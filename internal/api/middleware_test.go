package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"decorcms-backend/internal/auth"
	"decorcms-backend/internal/models"
)

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := AdminFromContext(r.Context())
		require.True(t, ok, "handler reached without admin in context")
		w.Write([]byte(admin.Email))
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour).
		WithClock(func() time.Time { return current })

	admins := newFakeAdminStore()
	require.NoError(t, admins.Create(context.Background(), &models.Admin{
		Email: "owner@example.com",
		Name:  "Owner",
	}))

	handler := RequireAdmin(tokens, admins, slog.New(slog.NewTextHandler(io.Discard, nil)))(protectedEcho(t))

	valid, err := tokens.Issue("owner@example.com")
	require.NoError(t, err)
	vanished, err := tokens.Issue("gone@example.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Token " + valid, http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, ""},
		{"vanished admin", "Bearer " + vanished, http.StatusUnauthorized, ""},
		{"valid", "Bearer " + valid, http.StatusOK, "owner@example.com"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				require.Equal(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin_ExpiredToken(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour).
		WithClock(func() time.Time { return current })

	admins := newFakeAdminStore()
	require.NoError(t, admins.Create(context.Background(), &models.Admin{Email: "owner@example.com"}))

	token, err := tokens.Issue("owner@example.com")
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	RequireAdmin(tokens, admins, slog.New(slog.NewTextHandler(io.Discard, nil)))(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Invalid and expired tokens and vanished admins must all produce the same
// response body so callers cannot tell why they were rejected.
func TestRequireAdmin_UniformResponses(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	admins := newFakeAdminStore()
	handler := RequireAdmin(tokens, admins, slog.New(slog.NewTextHandler(io.Discard, nil)))(protectedEcho(t))

	vanished, err := tokens.Issue("gone@example.com")
	require.NoError(t, err)

	bodies := map[string]string{}
	for name, header := range map[string]string{
		"garbage":  "Bearer junk",
		"vanished": "Bearer " + vanished,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
		bodies[name] = rec.Body.String()
	}

	require.Equal(t, bodies["garbage"], bodies["vanished"])
}

// A store outage on the protected path still answers 401, but the failure
// must land in the logs rather than disappear into the uniform response.
func TestRequireAdmin_StoreFailureLogged(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	admins := newFakeAdminStore()
	admins.getErr = errors.New("connection refused")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	token, err := tokens.Issue("owner@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	RequireAdmin(tokens, admins, logger)(protectedEcho(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, logs.String(), "admin lookup failed")
	require.Contains(t, logs.String(), "connection refused")
}
