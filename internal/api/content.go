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

type ContentStore interface {
	Get(ctx context.Context, section string) (map[string]any, error)
	Upsert(ctx context.Context, section string, content map[string]any) error
}

type ContentHandler struct {
	content ContentStore
}

func NewContentHandler(content ContentStore) *ContentHandler {
	return &ContentHandler{content: content}
}

// Get returns the stored copy for a section, or an empty content object for
// sections that have never been written.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	content, err := h.content.Get(r.Context(), section)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusOK, models.Content{SectionName: section, Content: map[string]any{}})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load content")
		return
	}

	writeJSON(w, http.StatusOK, models.Content{SectionName: section, Content: content})
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	var req models.ContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Content == nil {
		req.Content = map[string]any{}
	}

	if err := h.content.Upsert(r.Context(), section, req.Content); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update content")
		return
	}

	writeJSON(w, http.StatusOK, models.Content{SectionName: section, Content: req.Content})
}
