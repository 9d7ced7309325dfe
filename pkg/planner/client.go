package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// Client fetches the selectable options from the server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// Options returns the person roster and the representative shift-type sample.
func (c *Client) Options(ctx context.Context) (models.OptionsResponse, error) {
	var out models.OptionsResponse
	err := c.getJSON(ctx, "/api/options", &out)
	return out, err
}

// ShiftTypes returns the shift types for one person. The name is
// lowercase-normalized into the path, matching the server contract.
func (c *Client) ShiftTypes(ctx context.Context, name string) ([]string, error) {
	var out models.ShiftTypesResponse
	path := "/api/shift_types/" + url.PathEscape(strings.ToLower(name))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.ShiftTypes, nil
}

// ShiftDetails returns the shift metadata for one person. The endpoint is
// best-effort; any error is the caller's cue to proceed without metadata.
func (c *Client) ShiftDetails(ctx context.Context, name string) (map[string]models.ShiftDefinition, error) {
	var out map[string]models.ShiftDefinition
	path := "/api/shift_details/" + url.PathEscape(strings.ToLower(name))
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
