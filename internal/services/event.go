package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eventsite/internal/domain"
)

// fallbackEventID is the one event served from code. Content for it was never
// migrated into the CMS, so the lookup short-circuits before any external call.
const fallbackEventID = "fall-festival"

var fallbackEvent = domain.EventRecord{
	ID:               fallbackEventID,
	Name:             "Fall Festival",
	ShortDescription: "An afternoon of games, food trucks, and live music for the whole family.",
	Description: "Join us on the back lawn for our annual **Fall Festival**!\n\n" +
		"- Carnival games and inflatables\n" +
		"- Food trucks and a chili cook-off\n" +
		"- Live music from the worship team\n\n" +
		"No registration needed. Invite a friend and come hungry!",
	Date:     "2026-10-17T15:00:00Z",
	Location: "Back Lawn, Main Campus",
	Phone:    "(555) 014-2200",
	Image:    &domain.ImageRef{URL: "//cdn.example.com/uploads/fall-festival-hero.jpg"},
	Ministry: &domain.MinistryRef{Name: "Family Ministry"},
}

type eventService struct {
	logger         *slog.Logger
	provider       domain.EventProvider
	contextTimeout time.Duration
}

// NewEventService returns the EventService used by the event detail page.
func NewEventService(logger *slog.Logger, provider domain.EventProvider, timeout time.Duration) domain.EventService {
	return &eventService{
		logger:         logger,
		provider:       provider,
		contextTimeout: timeout,
	}
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	if id == fallbackEventID {
		rec := fallbackEvent
		return eventFromRecord(&rec), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rec, err := s.provider.GetEventByID(ctx, id)
	if err != nil {
		// Unreachable service and absent record both surface as not found.
		s.logger.WarnContext(ctx, "event lookup failed", "event_id", id, "err", err)
		return nil, domain.ErrNotFound
	}
	return eventFromRecord(rec), nil
}

// eventFromRecord maps the content-service payload onto the page's event model,
// resolving image references and keeping at most two named speakers.
func eventFromRecord(rec *domain.EventRecord) *domain.Event {
	e := &domain.Event{
		ID:               rec.ID,
		Name:             rec.Name,
		ShortDescription: rec.ShortDescription,
		Description:      rec.Description,
		Location:         rec.Location,
		Phone:            rec.Phone,
		ImageURL:         ResolveImageURL(rec.Image),
		Date:             parseEventDate(rec.Date),
	}
	if rec.Ministry != nil {
		e.MinistryName = rec.Ministry.Name
	}
	for _, sp := range []struct {
		name  string
		image *domain.ImageRef
	}{
		{rec.Speaker1Name, rec.Speaker1Image},
		{rec.Speaker2Name, rec.Speaker2Image},
	} {
		if sp.name == "" {
			continue
		}
		e.Speakers = append(e.Speakers, domain.EventSpeaker{
			Name:     sp.name,
			ImageURL: ResolveImageURL(sp.image),
		})
	}
	return e
}

// ResolveImageURL normalizes a content-service image reference into a usable URL.
// A path starting with a single slash is host-relative and used verbatim; any
// other non-empty path (including protocol-relative CDN paths) gets the secure
// scheme prefixed. An absent reference yields "".
func ResolveImageURL(ref *domain.ImageRef) string {
	if ref == nil || ref.URL == "" {
		return ""
	}
	if strings.HasPrefix(ref.URL, "/") && !strings.HasPrefix(ref.URL, "//") {
		return ref.URL
	}
	return "https:" + ref.URL
}

func parseEventDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
