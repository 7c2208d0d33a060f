package eventsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"devevent/internal/domain"
)

// ErrFetchEvents is returned when the event listing endpoint cannot be read.
var ErrFetchEvents = errors.New("failed to fetch events")

type httpEventFeed struct {
	baseURL string
	client  *http.Client
}

// NewHTTPEventFeed returns an EventFeed that reads GET <baseURL>/api/events.
func NewHTTPEventFeed(baseURL string, client *http.Client) domain.EventFeed {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpEventFeed{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (f *httpEventFeed) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api/events", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrFetchEvents, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchEvents, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: events api returned status %d", ErrFetchEvents, resp.StatusCode)
	}

	var events []*domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrFetchEvents, err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}
