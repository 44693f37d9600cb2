package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"decorcms-backend/internal/storage"
)

type SettingsStore interface {
	AdminEmail(ctx context.Context) (string, error)
	SetAdminEmail(ctx context.Context, email string) error
}

type SettingsHandler struct {
	settings SettingsStore
	fallback string
}

func NewSettingsHandler(settings SettingsStore, fallback string) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
		fallback: fallback,
	}
}

func (h *SettingsHandler) GetAdminEmail(w http.ResponseWriter, r *http.Request) {
	email, err := h.settings.AdminEmail(r.Context())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "failed to load settings")
			return
		}
		email = h.fallback
	}

	writeJSON(w, http.StatusOK, map[string]string{"email": email})
}

func (h *SettingsHandler) UpdateAdminEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "invalid email")
		return
	}

	if err := h.settings.SetAdminEmail(r.Context(), req.Email); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"email": req.Email})
}
