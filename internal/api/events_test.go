package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"decorcms-backend/internal/auth"
	"decorcms-backend/internal/models"
)

func TestEventHandler_CreateAndList(t *testing.T) {
	t.Parallel()

	h := NewEventHandler(newFakeEventStore())

	rec := doJSON(t, h.Create, http.MethodPost, "/api/events",
		`{"title":"Mandap Setup","location":"Leicester","event_type":"wedding","category":"mandap","description":"d","date":"2024-06-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.EventID)

	rec = doJSON(t, h.List, http.MethodGet, "/api/events?category=mandap", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	require.Equal(t, "Mandap Setup", events[0].Title)

	rec = doJSON(t, h.List, http.MethodGet, "/api/events?category=other", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

// Every descriptive field is mandatory on intake; images alone stay optional.
func TestEventHandler_CreateRequiredFields(t *testing.T) {
	t.Parallel()

	h := NewEventHandler(newFakeEventStore())

	for name, body := range map[string]string{
		"missing title":       `{"location":"Leicester","event_type":"wedding","category":"mandap","description":"d","date":"2024-06-01"}`,
		"missing location":    `{"title":"t","event_type":"wedding","category":"mandap","description":"d","date":"2024-06-01"}`,
		"missing event_type":  `{"title":"t","location":"Leicester","category":"mandap","description":"d","date":"2024-06-01"}`,
		"missing category":    `{"title":"t","location":"Leicester","event_type":"wedding","description":"d","date":"2024-06-01"}`,
		"missing description": `{"title":"t","location":"Leicester","event_type":"wedding","category":"mandap","date":"2024-06-01"}`,
		"missing date":        `{"title":"t","location":"Leicester","event_type":"wedding","category":"mandap","description":"d"}`,
	} {
		rec := doJSON(t, h.Create, http.MethodPost, "/api/events", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, name)
	}

	rec := doJSON(t, h.Create, http.MethodPost, "/api/events",
		`{"title":"t","location":"Leicester","event_type":"wedding","category":"mandap","description":"d","date":"2024-06-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "images must not be required")
}

// A missing resource behind the auth gate must surface as 404, not get
// coerced into the middleware's 401.
func TestEventHandler_NotFoundThroughMiddleware(t *testing.T) {
	t.Parallel()

	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	admins := newFakeAdminStore()
	require.NoError(t, admins.Create(context.Background(), &models.Admin{Email: "owner@example.com"}))

	token, err := tokens.Issue("owner@example.com")
	require.NoError(t, err)

	h := NewEventHandler(newFakeEventStore())
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(tokens, admins, slog.New(slog.NewTextHandler(io.Discard, nil))))
		r.Put("/api/events/{id}", h.Update)
		r.Delete("/api/events/{id}", h.Delete)
	})

	req := httptest.NewRequest(http.MethodPut, "/api/events/missing", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/events/missing", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_PartialUpdate(t *testing.T) {
	t.Parallel()

	store := newFakeEventStore()
	h := NewEventHandler(store)

	event := &models.Event{Title: "Original", Category: "mandap"}
	require.NoError(t, store.Create(context.Background(), event))

	r := chi.NewRouter()
	r.Put("/api/events/{id}", h.Update)

	req := httptest.NewRequest(http.MethodPut, "/api/events/"+event.EventID,
		strings.NewReader(`{"title":"Renamed"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, "mandap", updated.Category, "unset fields must be left unchanged")
}
