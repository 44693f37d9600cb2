package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"decorcms-backend/internal/mailer"
	"decorcms-backend/internal/models"
	"decorcms-backend/internal/storage"
)

type EnquiryStore interface {
	Create(ctx context.Context, e *models.Enquiry) error
	List(ctx context.Context) ([]models.Enquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type EnquiryHandler struct {
	enquiries EnquiryStore
	settings  SettingsStore
	notifier  *mailer.Notifier
	recipient string
	logger    *slog.Logger
}

// NewEnquiryHandler wires enquiry intake to the notification pipeline.
// notifier may be nil when email is not configured; recipient is the
// fallback address when none is stored in settings.
func NewEnquiryHandler(enquiries EnquiryStore, settings SettingsStore, notifier *mailer.Notifier, recipient string, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{
		enquiries: enquiries,
		settings:  settings,
		notifier:  notifier,
		recipient: recipient,
		logger:    logger,
	}
}

func (h *EnquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.EnquiryCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "name and a valid email are required")
		return
	}

	enquiry := &models.Enquiry{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Location:  req.Location,
		Message:   req.Message,
	}

	if err := h.enquiries.Create(r.Context(), enquiry); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create enquiry")
		return
	}

	// notification must not block or fail the response
	go h.notify(enquiry)

	writeJSON(w, http.StatusCreated, enquiry)
}

func (h *EnquiryHandler) notify(enquiry *models.Enquiry) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	to, err := h.settings.AdminEmail(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.logger.Error("failed to load notification recipient", "error", err)
		}
		to = h.recipient
	}
	if to == "" {
		return
	}

	h.notifier.EnquiryReceived(ctx, to, enquiry)
}

func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.enquiries.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list enquiries")
		return
	}

	writeJSON(w, http.StatusOK, enquiries)
}

func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.EnquiryStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	if err := h.enquiries.UpdateStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "enquiry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update enquiry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "enquiry status updated"})
}
