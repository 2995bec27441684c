package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsite/internal/delivery/http/controllers"
	"eventsite/internal/delivery/http/pages"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventPage *pages.EventPage, eventController *controllers.EventController) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages. /events?id=... is served by the same shell handler; the query
	// parameter takes precedence over the path segment.
	mux.HandleFunc("GET /events", eventPage.Shell)
	mux.HandleFunc("GET /events/{eventID}", eventPage.Shell)
	mux.HandleFunc("GET /events/{eventID}/content", eventPage.Content)

	// API Routes
	mux.HandleFunc("GET /api/events/{eventID}", eventController.GetEventByID)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
