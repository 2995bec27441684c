package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no event exists for the requested identifier.
// Content-service failures are collapsed into it as well; the delivery layer
// never distinguishes "service unreachable" from "record absent".
var ErrNotFound = errors.New("event not found")

// Event represents one public event as shown on its detail page.
// All fields except ID and Name are optional; presence governs which
// page sections render.
// swagger:model Event
type Event struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ShortDescription string         `json:"short_description,omitempty"`
	Description      string         `json:"description,omitempty"` // markdown source
	Date             *time.Time     `json:"date,omitempty"`
	Location         string         `json:"location,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	ImageURL         string         `json:"image_url,omitempty"` // resolved banner URL
	MinistryName     string         `json:"ministry_name,omitempty"`
	Speakers         []EventSpeaker `json:"speakers,omitempty"` // at most two
}

// EventSpeaker is a speaker shown on the event page.
// swagger:model EventSpeaker
type EventSpeaker struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// EventService resolves event content for rendering. The returned record is
// request-scoped and never cached or mutated after the lookup.
type EventService interface {
	GetEventByID(ctx context.Context, id string) (*Event, error)
}
