package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/insanmekan/journal_management_app/internal/adapters/backend/rest"
	"github.com/insanmekan/journal_management_app/internal/core/services"
	"github.com/insanmekan/journal_management_app/internal/handlers"
	"github.com/insanmekan/journal_management_app/internal/i18n"
	"github.com/insanmekan/journal_management_app/internal/localstore"
	"github.com/insanmekan/journal_management_app/internal/middleware"
	"github.com/insanmekan/journal_management_app/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Local store keeps the session token and the working journal mirror
	// across restarts. The gateway still works without it.
	store, err := localstore.Open(cfg.LocalStorePath)
	if err != nil {
		logger.Warn("Failed to open local store, session will not survive restarts", slog.String("error", err.Error()))
		store = nil
	} else {
		defer store.Close()
	}

	apis := rest.New(cfg).Provider()

	bootCtx, cancel := context.WithTimeout(context.Background(), cfg.BackendTimeout)
	container := services.NewServiceContainer(bootCtx, cfg, apis, store)
	if _, err := container.ActiveJournal.Refresh(bootCtx); err != nil {
		logger.Warn("No working journal restored at boot", slog.String("error", err.Error()))
	}
	cancel()

	resolver := i18n.NewResolver()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, resolver)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}
