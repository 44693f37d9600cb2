package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"decorcms-backend/internal/auth"
	"decorcms-backend/internal/models"
	"decorcms-backend/internal/storage"
)

// AdminStore is the full admin persistence contract the auth handler needs.
type AdminStore interface {
	AdminDirectory
	Create(ctx context.Context, admin *models.Admin) error
}

type AuthHandler struct {
	admins AdminStore
	tokens *auth.TokenManager
}

func NewAuthHandler(admins AdminStore, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		admins: admins,
		tokens: tokens,
	}
}

// Register creates the first and only administrator. Once one exists, every
// further attempt fails with 403 regardless of payload; the storage layer
// enforces this atomically.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}
	if req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "password and name are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	admin := &models.Admin{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.admins.Create(r.Context(), admin); err != nil {
		if errors.Is(err, storage.ErrRegistrationDisabled) {
			writeError(w, http.StatusForbidden, "admin registration is disabled")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create admin")
		return
	}

	writeJSON(w, http.StatusCreated, admin.Profile())
}

// Login verifies credentials and mints a bearer token. Unknown email and
// wrong password are deliberately indistinguishable.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	admin, err := h.admins.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch admin")
		return
	}
	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.Issue(admin.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       admin.Profile(),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := AdminFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	writeJSON(w, http.StatusOK, admin.Profile())
}
