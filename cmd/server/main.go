// cmd/server is the application entry point. It wires together the config,
// content-service client, services, and HTTP delivery layer.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsite/config"
	"eventsite/internal/adapters/cms"
	"eventsite/internal/adapters/markdown"
	delivery "eventsite/internal/delivery/http"
	"eventsite/internal/delivery/http/controllers"
	"eventsite/internal/delivery/http/middleware"
	"eventsite/internal/delivery/http/pages"
	"eventsite/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	provider := cms.NewHTTPProvider(&http.Client{Timeout: 10 * time.Second}, cfg.CMSBaseURL, cfg.CMSAPIToken)
	renderer := markdown.NewRenderer()
	eventService := services.NewEventService(logger, provider, 5*time.Second)

	eventPage, err := pages.NewEventPage(logger, eventService, renderer)
	if err != nil {
		logger.Error("failed to build event page", "err", err)
		os.Exit(1)
	}
	eventController := controllers.NewEventController(logger, eventService)

	mux := delivery.NewRouter(eventPage, eventController)
	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.AllowedOrigins, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
