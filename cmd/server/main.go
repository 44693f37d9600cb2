package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"decorcms-backend/internal/api"
	"decorcms-backend/internal/auth"
	"decorcms-backend/internal/config"
	"decorcms-backend/internal/mailer"
	"decorcms-backend/internal/storage"
	"decorcms-backend/internal/uploads"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jwtExpiry, err := cfg.GetJWTExpiry()
	if err != nil {
		logger.Error("invalid jwt expiry", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWT.SecretKey), jwtExpiry)
	signer := uploads.NewSigner(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)

	adminStore := storage.NewAdminStore(db)
	eventStore := storage.NewEventStore(db)
	serviceStore := storage.NewServiceStore(db)
	enquiryStore := storage.NewEnquiryStore(db)
	contentStore := storage.NewContentStore(db)
	settingsStore := storage.NewSettingsStore(db)

	var notifier *mailer.Notifier
	if cfg.Email.APIKey != "" {
		notifier = mailer.NewNotifier(mailer.NewResendSender(cfg.Email.APIKey), cfg.Email.Sender, logger)
	} else {
		logger.Warn("email api key not configured, enquiry notifications disabled")
	}

	handlers := api.Handlers{
		Auth:      api.NewAuthHandler(adminStore, tokens),
		Events:    api.NewEventHandler(eventStore),
		Services:  api.NewServiceHandler(serviceStore),
		Enquiries: api.NewEnquiryHandler(enquiryStore, settingsStore, notifier, cfg.Email.AdminEmail, logger),
		Content:   api.NewContentHandler(contentStore),
		Uploads:   api.NewUploadHandler(signer, cfg.GetUploadFolder()),
		Settings:  api.NewSettingsHandler(settingsStore, cfg.Email.AdminEmail),
	}

	router := api.NewRouter(handlers, tokens, adminStore, cfg.CORS.AllowedOrigins, logger)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr)

		var err error
		if cfg.Server.TLS.CertFile != "" && cfg.Server.TLS.KeyFile != "" {
			err = server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
