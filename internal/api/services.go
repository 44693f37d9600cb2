package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"decorcms-backend/internal/models"
	"decorcms-backend/internal/storage"
)

type ServiceStore interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, svc *models.Service) error
	Update(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error)
}

type ServiceHandler struct {
	services ServiceStore
}

func NewServiceHandler(services ServiceStore) *ServiceHandler {
	return &ServiceHandler{services: services}
}

func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list services")
		return
	}

	writeJSON(w, http.StatusOK, services)
}

func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var svc models.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if svc.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := h.services.Create(r.Context(), &svc); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create service")
		return
	}

	writeJSON(w, http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	svc, err := h.services.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "service not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update service")
		return
	}

	writeJSON(w, http.StatusOK, svc)
}
