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

type EventStore interface {
	List(ctx context.Context, category string) ([]models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, id string, upd models.EventUpdate) (*models.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventHandler struct {
	events EventStore
}

func NewEventHandler(events EventStore) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	events, err := h.events.List(r.Context(), category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Title == "" || req.Location == "" || req.EventType == "" ||
		req.Category == "" || req.Description == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "title, location, event_type, category, description and date are required")
		return
	}

	event := &models.Event{
		Title:       req.Title,
		Location:    req.Location,
		EventType:   req.EventType,
		Category:    req.Category,
		Images:      req.Images,
		Description: req.Description,
		Date:        req.Date,
	}

	if err := h.events.Create(r.Context(), event); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create event")
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.EventUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	event, err := h.events.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.events.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
