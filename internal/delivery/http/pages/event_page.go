package pages

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"eventsite/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// EventPage renders the public event detail page. The shell responds
// immediately with a loading skeleton; the browser then swaps in the
// content fragment, which performs the single per-request lookup.
type EventPage struct {
	logger  *slog.Logger
	service domain.EventService
	md      domain.MarkdownRenderer
	tmpl    *template.Template
}

// NewEventPage parses the embedded templates and returns the page handler set.
func NewEventPage(logger *slog.Logger, svc domain.EventService, md domain.MarkdownRenderer) (*EventPage, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &EventPage{
		logger:  logger,
		service: svc,
		md:      md,
		tmpl:    tmpl,
	}, nil
}

// eventID extracts the event identifier from the request. The id query
// parameter takes precedence over the path segment.
func eventID(r *http.Request) string {
	if id := r.URL.Query().Get("id"); id != "" {
		return id
	}
	return r.PathValue("eventID")
}

type shellData struct {
	EventID    string
	ContentURL string
}

// Shell serves the page layout with the skeleton placeholder. No lookup
// happens here; a request without an identifier is the only not-found case.
func (p *EventPage) Shell(w http.ResponseWriter, r *http.Request) {
	id := eventID(r)
	if id == "" {
		p.renderNotFoundPage(w, r)
		return
	}
	data := shellData{
		EventID:    id,
		ContentURL: "/events/" + url.PathEscape(id) + "/content",
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		p.logger.ErrorContext(r.Context(), "render shell failed", "event_id", id, "err", err)
	}
}

// Content serves the rendered event detail fragment. A missing record and a
// content-service failure both produce the not-found fragment.
func (p *EventPage) Content(w http.ResponseWriter, r *http.Request) {
	id := eventID(r)
	if id == "" {
		p.renderNotFoundFragment(w, r)
		return
	}
	event, err := p.service.GetEventByID(r.Context(), id)
	if err != nil {
		p.renderNotFoundFragment(w, r)
		return
	}
	view, err := newEventView(event, p.md)
	if err != nil {
		// The view already degraded the description; log and render anyway.
		p.logger.WarnContext(r.Context(), "markdown render failed", "event_id", id, "err", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, "event_detail", view); err != nil {
		p.logger.ErrorContext(r.Context(), "render event detail failed", "event_id", id, "err", err)
	}
}

func (p *EventPage) renderNotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := p.tmpl.ExecuteTemplate(w, "not_found_page", nil); err != nil {
		p.logger.ErrorContext(r.Context(), "render not found page failed", "err", err)
	}
}

func (p *EventPage) renderNotFoundFragment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := p.tmpl.ExecuteTemplate(w, "not_found", nil); err != nil {
		p.logger.ErrorContext(r.Context(), "render not found fragment failed", "err", err)
	}
}
