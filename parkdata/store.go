// Package parkdata mirrors the four upstream collections (attractions,
// shows, ticket tiers, extras) in memory. The backend owns the data; this
// store only fetches, caches and refetches it.
package parkdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"enjoypark/models"
)

// Resource names, also used as path segments on the refresh endpoint.
const (
	ResourceAttractions = "attractions"
	ResourceShows       = "shows"
	ResourceTickets     = "tickets"
	ResourceExtras      = "extras"
)

// upstream paths; extras live under /ticket-options on the backend.
var resourcePaths = map[string]string{
	ResourceAttractions: "/attractions",
	ResourceShows:       "/shows",
	ResourceTickets:     "/tickets",
	ResourceExtras:      "/ticket-options",
}

// Per-resource fetch states reported by Status().
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusFailed  = "failed"
)

// Store holds the cached collections behind a single lock. A failed fetch
// keeps the last-known collection and records the error; the shared error
// message is last-write-wins across concurrent fetches, and Loading()
// stays true until the last outstanding fetch resolves either way.
type Store struct {
	baseURL string
	client  *http.Client

	mu          sync.RWMutex
	attractions []models.Attraction
	shows       []models.Show
	tickets     []models.Ticket
	extras      []models.Extra
	inflight    int
	lastErr     string
	status      map[string]string

	// called with the fresh list after every successful attractions
	// fetch; wired to the live wait-time hub in main.
	onAttractions func([]models.Attraction)
}

func NewStore(baseURL string, client *http.Client) *Store {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		status: map[string]string{
			ResourceAttractions: StatusIdle,
			ResourceShows:       StatusIdle,
			ResourceTickets:     StatusIdle,
			ResourceExtras:      StatusIdle,
		},
	}
}

// OnAttractions registers the refetch notification hook. Set once at
// startup, before FetchAll.
func (s *Store) OnAttractions(fn func([]models.Attraction)) {
	s.onAttractions = fn
}

// FetchAll issues the four fetches concurrently. Completions are not
// ordered; each updates its own collection and the shared flags
// independently.
func (s *Store) FetchAll(ctx context.Context) {
	go s.FetchAttractions(ctx)
	go s.FetchShows(ctx)
	go s.FetchTickets(ctx)
	go s.FetchExtras(ctx)
}

func (s *Store) FetchAttractions(ctx context.Context) error {
	var fresh []models.Attraction
	err := s.fetch(ctx, ResourceAttractions, &fresh, "failed to load attractions")
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.attractions = fresh
	s.mu.Unlock()
	if s.onAttractions != nil {
		s.onAttractions(fresh)
	}
	return nil
}

func (s *Store) FetchShows(ctx context.Context) error {
	var fresh []models.Show
	if err := s.fetch(ctx, ResourceShows, &fresh, "failed to load shows"); err != nil {
		return err
	}
	s.mu.Lock()
	s.shows = fresh
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchTickets(ctx context.Context) error {
	var fresh []models.Ticket
	if err := s.fetch(ctx, ResourceTickets, &fresh, "failed to load tickets"); err != nil {
		return err
	}
	s.mu.Lock()
	s.tickets = fresh
	s.mu.Unlock()
	return nil
}

func (s *Store) FetchExtras(ctx context.Context) error {
	var fresh []models.Extra
	if err := s.fetch(ctx, ResourceExtras, &fresh, "failed to load extras"); err != nil {
		return err
	}
	s.mu.Lock()
	s.extras = fresh
	s.mu.Unlock()
	return nil
}

// Refresh refetches a single resource by name.
func (s *Store) Refresh(ctx context.Context, resource string) error {
	switch resource {
	case ResourceAttractions:
		return s.FetchAttractions(ctx)
	case ResourceShows:
		return s.FetchShows(ctx)
	case ResourceTickets:
		return s.FetchTickets(ctx)
	case ResourceExtras:
		return s.FetchExtras(ctx)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

// fetch GETs one collection and decodes it into dst. On any failure dst
// is left untouched, the resource is marked failed and msg becomes the
// shared error message.
func (s *Store) fetch(ctx context.Context, resource string, dst any, msg string) error {
	s.begin(resource)

	err := s.get(ctx, resourcePaths[resource], dst)
	if err != nil {
		s.finish(resource, msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
	s.finish(resource, "")
	return nil
}

func (s *Store) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("backend returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (s *Store) begin(resource string) {
	s.mu.Lock()
	s.inflight++
	s.lastErr = ""
	s.status[resource] = StatusLoading
	s.mu.Unlock()
}

func (s *Store) finish(resource, errMsg string) {
	s.mu.Lock()
	s.inflight--
	if errMsg != "" {
		s.lastErr = errMsg
		s.status[resource] = StatusFailed
	} else {
		s.lastErr = ""
		s.status[resource] = StatusReady
	}
	s.mu.Unlock()
}

// Loading reports whether any fetch is still in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err returns the last failure message across all fetches, empty when the
// most recently completed fetch succeeded.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Status returns the per-resource state map.
func (s *Store) Status() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out
}

// Snapshot accessors return copies so callers can filter and slice
// without holding the lock.

func (s *Store) Attractions() []models.Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Attraction, len(s.attractions))
	copy(out, s.attractions)
	return out
}

func (s *Store) Shows() []models.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Show, len(s.shows))
	copy(out, s.shows)
	return out
}

func (s *Store) Tickets() []models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *Store) Extras() []models.Extra {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Extra, len(s.extras))
	copy(out, s.extras)
	return out
}

// AttractionByID looks an attraction up in the current snapshot.
func (s *Store) AttractionByID(id int) (models.Attraction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attractions {
		if a.ID == id {
			return a, true
		}
	}
	return models.Attraction{}, false
}

func (s *Store) ShowByID(id int) (models.Show, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shows {
		if sh.ID == id {
			return sh, true
		}
	}
	return models.Show{}, false
}

func (s *Store) TicketByID(id string) (models.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return models.Ticket{}, false
}
