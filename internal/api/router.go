package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"decorcms-backend/internal/auth"
)

type Handlers struct {
	Auth      *AuthHandler
	Events    *EventHandler
	Services  *ServiceHandler
	Enquiries *EnquiryHandler
	Content   *ContentHandler
	Uploads   *UploadHandler
	Settings  *SettingsHandler
}

func NewRouter(h Handlers, tokens *auth.TokenManager, admins AdminDirectory, allowedOrigins []string, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(CORSMiddleware(allowedOrigins))

	r.Get("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "content management API", "status": "active"})
	})

	r.Post("/api/auth/register", h.Auth.Register)
	r.Post("/api/auth/login", h.Auth.Login)

	r.Get("/api/events", h.Events.List)
	r.Get("/api/services", h.Services.List)
	r.Post("/api/enquiries", h.Enquiries.Create)
	r.Get("/api/content/{section}", h.Content.Get)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(tokens, admins, logger))

		r.Get("/api/auth/me", h.Auth.Me)

		r.Post("/api/events", h.Events.Create)
		r.Put("/api/events/{id}", h.Events.Update)
		r.Delete("/api/events/{id}", h.Events.Delete)

		r.Post("/api/services", h.Services.Create)
		r.Put("/api/services/{id}", h.Services.Update)

		r.Get("/api/enquiries", h.Enquiries.List)
		r.Patch("/api/enquiries/{id}", h.Enquiries.UpdateStatus)

		r.Put("/api/content/{section}", h.Content.Update)

		r.Get("/api/cloudinary/signature", h.Uploads.Signature)

		r.Get("/api/settings/admin-email", h.Settings.GetAdminEmail)
		r.Put("/api/settings/admin-email", h.Settings.UpdateAdminEmail)
	})

	return r
}
