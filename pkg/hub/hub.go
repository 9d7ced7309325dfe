package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Event is the payload of a calendar.create_event service call.
type Event struct {
	EntityID      string `json:"entity_id"`
	Summary       string `json:"summary"`
	Description   string `json:"description"`
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
}

// EventCreator is the part of the hub the handlers depend on.
type EventCreator interface {
	CreateEvent(ctx context.Context, ev Event) error
}

// Client talks to a Home Assistant instance.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a hub client for the given base URL and long-lived token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateEvent calls the calendar.create_event service once. A non-2xx status
// is returned as an error carrying the response body detail.
func (c *Client) CreateEvent(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	url := c.baseURL + "/api/services/calendar/create_event"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if len(detail) == 0 {
			return fmt.Errorf("%s", resp.Status)
		}
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return nil
}
