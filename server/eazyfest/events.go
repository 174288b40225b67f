package eazyfest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ListEvents fetches the full event catalog. The API returns either a bare
// array or a page wrapper with the list in a "content" field; both shapes are
// normalized to a slice.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/events", "", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var events []Event
	if err := json.Unmarshal(raw, &events); err == nil {
		return events, nil
	}

	var page struct {
		Content []Event `json:"content"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	return page.Content, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID int) (*Event, error) {
	if eventID <= 0 {
		return nil, fmt.Errorf("invalid event id %d: %w", eventID, ErrNotFound)
	}

	var event Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+strconv.Itoa(eventID), "", nil, &event); err != nil {
		return nil, fmt.Errorf("failed to fetch event %d: %w", eventID, err)
	}

	return &event, nil
}
