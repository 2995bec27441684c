package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"eventsite/internal/domain"
)

type eventHTTPProvider struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewHTTPProvider returns a provider that calls the headless content service.
// token may be empty for services with public read access.
func NewHTTPProvider(client *http.Client, baseURL, token string) domain.EventProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &eventHTTPProvider{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

func (p *eventHTTPProvider) GetEventByID(ctx context.Context, id string) (*domain.EventRecord, error) {
	u := fmt.Sprintf("%s/api/events/%s", p.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from content service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content service returned status: %d", resp.StatusCode)
	}

	var rec domain.EventRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode content service response: %w", err)
	}
	return &rec, nil
}
