package domain

import "context"

// EventProvider fetches event content from the headless content service (or a test double).
type EventProvider interface {
	GetEventByID(ctx context.Context, id string) (*EventRecord, error)
}

// EventRecord is the content-service event payload.
type EventRecord struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription string       `json:"shortDescription"`
	Description      string       `json:"description"`
	Date             string       `json:"date"`
	Location         string       `json:"location"`
	Phone            string       `json:"phone"`
	Image            *ImageRef    `json:"image"`
	Ministry         *MinistryRef `json:"ministry"`
	Speaker1Name     string       `json:"speaker1Name"`
	Speaker1Image    *ImageRef    `json:"speaker1Image"`
	Speaker2Name     string       `json:"speaker2Name"`
	Speaker2Image    *ImageRef    `json:"speaker2Image"`
}

// ImageRef is an image reference in the content-service payload. URL may be
// host-relative ("/uploads/x.jpg") or protocol-relative ("//cdn.example.com/x.jpg").
type ImageRef struct {
	URL string `json:"url"`
}

// MinistryRef is the organizing ministry reference in the content-service payload.
type MinistryRef struct {
	Name string `json:"name"`
}
