package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCreateEvent(t *testing.T) {
	var got Event
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services/calendar/create_event" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "token123")
	ev := Event{
		EntityID:      "calendar.anna",
		Summary:       "Anna: Frueh",
		Description:   "Schicht von 06:00 bis 14:00",
		StartDateTime: "2024-03-05 06:00",
		EndDateTime:   "2024-03-05 14:00",
	}
	if err := c.CreateEvent(context.Background(), ev); err != nil {
		t.Fatalf("create event failed: %v", err)
	}

	if auth != "Bearer token123" {
		t.Errorf("unexpected authorization header: %s", auth)
	}
	if got != ev {
		t.Errorf("payload mismatch: %+v", got)
	}
}

func TestCreateEventUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "calendar unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token123")
	err := c.CreateEvent(context.Background(), Event{EntityID: "calendar.anna"})
	if err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "calendar unavailable") {
		t.Errorf("error should carry status and body detail: %v", err)
	}
}
