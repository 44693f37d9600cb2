package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"decorcms-backend/internal/auth"
	"decorcms-backend/internal/models"
	"decorcms-backend/internal/storage"
)

type adminContextKey struct{}

// AdminFromContext returns the administrator resolved by RequireAdmin.
// Handlers receiving it may trust the identity without re-validating.
func AdminFromContext(ctx context.Context) (*models.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey{}).(*models.Admin)
	return admin, ok
}

// AdminDirectory is the subset of the admin store the middleware needs.
type AdminDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// RequireAdmin gates a route group behind a valid bearer token whose subject
// resolves to a live administrator. All failure modes collapse into one 401
// so callers cannot probe why a token was rejected.
func RequireAdmin(tokens *auth.TokenManager, admins AdminDirectory, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			email, err := tokens.Validate(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			admin, err := admins.GetByEmail(r.Context(), email)
			if err != nil {
				// a vanished admin is indistinguishable from a bad token,
				// but a store outage must still reach the logs
				if !errors.Is(err, storage.ErrNotFound) {
					logger.Error("admin lookup failed", "error", err)
				}
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey{}, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
