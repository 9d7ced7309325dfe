package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/kbenzel/schichtplaner/pkg/models"
)

// Validation rejections surfaced by Submit. Callers show these as transient
// warnings; the store is never touched.
var (
	ErrNothingToImport = errors.New("keine Schichten zum Importieren")
	ErrImportInFlight  = errors.New("ein Import läuft bereits")
)

// Submitter sends the staged selections to the batch endpoint. At most one
// import may be in flight at a time.
type Submitter struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	inFlight bool
}

// NewSubmitter creates a submitter for the given server base URL.
func NewSubmitter(baseURL string, client *http.Client) *Submitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Submitter{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// InFlight reports whether an import is currently running, so callers can
// disable and relabel the trigger control.
func (s *Submitter) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit posts the full ordered list as one request and returns the ordered
// per-item result strings. An empty list or a second concurrent call is
// rejected before any network activity. A transport error returns no results;
// the caller keeps the store for retry.
func (s *Submitter) Submit(ctx context.Context, shifts []models.PlannedShift) ([]string, error) {
	if len(shifts) == 0 {
		return nil, ErrNothingToImport
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrImportInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	body, err := json.Marshal(shifts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/add_shifts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("import request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("import request failed: %s", resp.Status)
	}

	var results []string
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode import results: %w", err)
	}
	return results, nil
}

// IsFailure classifies one result string. A result is a failure if it carries
// one of the marker tokens; there is no structured status field.
func IsFailure(result string) bool {
	return strings.Contains(result, "Fehler") || strings.Contains(result, "Unbekannt")
}

// SuccessCount counts the results that are not failures.
func SuccessCount(results []string) int {
	n := 0
	for _, r := range results {
		if !IsFailure(r) {
			n++
		}
	}
	return n
}
