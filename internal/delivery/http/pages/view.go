package pages

import (
	"html/template"
	"strings"
	"time"

	"eventsite/internal/domain"
)

// DetailRow is one label/value pair in the details grid. A non-empty Href
// renders the value as a link. It is template.URL because tel: is not on
// html/template's URL scheme allowlist.
type DetailRow struct {
	Label string
	Value string
	Href  template.URL
}

// SpeakerCard is one entry in the speakers grid.
type SpeakerCard struct {
	Name     string
	ImageURL string
}

// EventView is the data handed to the event detail templates. Which sections
// render is decided here, from field presence, so the templates stay dumb.
type EventView struct {
	Name             string
	ShortDescription string
	ImageURL         string
	Description      template.HTML
	Details          []DetailRow
	Speakers         []SpeakerCard
}

func newEventView(e *domain.Event, md domain.MarkdownRenderer) (EventView, error) {
	v := EventView{
		Name:             e.Name,
		ShortDescription: e.ShortDescription,
		ImageURL:         e.ImageURL,
		Details:          detailRows(e),
	}
	if e.Description != "" {
		html, err := md.Render(e.Description)
		if err != nil {
			// Degrade to escaped plain text rather than dropping the section.
			v.Description = template.HTML(template.HTMLEscapeString(e.Description))
			return v, err
		}
		v.Description = html
	}
	for _, sp := range e.Speakers {
		v.Speakers = append(v.Speakers, SpeakerCard{Name: sp.Name, ImageURL: sp.ImageURL})
	}
	return v, nil
}

// detailRows builds the details grid: date first and always, then phone,
// location, and ministry only when present.
func detailRows(e *domain.Event) []DetailRow {
	rows := []DetailRow{{Label: "Date", Value: formatEventDate(e.Date)}}
	if e.Phone != "" {
		rows = append(rows, DetailRow{Label: "Phone", Value: e.Phone, Href: template.URL("tel:" + telDigits(e.Phone))})
	}
	if e.Location != "" {
		rows = append(rows, DetailRow{Label: "Location", Value: e.Location})
	}
	if e.MinistryName != "" {
		rows = append(rows, DetailRow{Label: "Ministry", Value: e.MinistryName})
	}
	return rows
}

func formatEventDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

// telDigits keeps only the characters meaningful in a tel: URI.
func telDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
