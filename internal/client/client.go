// Package client implements the client-side booking state: a read-through
// cache of events and bookings over the HTTP API. The cache is never
// authoritative; availability only changes here by re-fetching, because a
// client-side decrement would drift under concurrent bookers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/evently/event-booking/internal/model"
)

// Client caches server state and surfaces the last error as a string.
// Methods never panic and never propagate transport faults to the caller:
// every failure is converted into recorded error state.
//
// Fetches for the same resource may complete out of order; per-query-key
// sequence numbers ensure the cache always reflects the most recently
// issued request that completed, and stale responses are discarded.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	events   []model.Event
	bookings []model.Booking
	loading  bool
	creating bool
	lastErr  string

	issued  map[string]uint64 // newest sequence handed out per query key
	applied map[string]uint64 // newest sequence whose response was applied
}

// New builds a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		issued:  make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

// Events returns a copy of the cached event list.
func (c *Client) Events() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Bookings returns a copy of the cached booking list.
func (c *Client) Bookings() []model.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// Loading reports whether a fetch is in flight.
func (c *Client) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Creating reports whether a booking submission is in flight.
func (c *Client) Creating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.creating
}

// Err returns the last recorded error message, or "".
func (c *Client) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// ClearError clears the recorded error without other side effects.
func (c *Client) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = ""
}

// FetchEvents replaces the cached event list wholesale on success; partial
// results are never merged.
func (c *Client) FetchEvents(ctx context.Context) {
	const key = "events"
	seq := c.beginFetch(key)

	var list model.EventListResponse
	err := c.get(ctx, "/v1/events", &list)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.settleFetch(key, seq, err) {
		return
	}
	c.events = list.Events
}

// FetchEventByID fetches one event and upserts it into the cache by id:
// replaced when present, appended when absent. The cache never holds two
// entries for the same id.
func (c *Client) FetchEventByID(ctx context.Context, id string) {
	key := "event:" + id
	seq := c.beginFetch(key)

	var detail model.EventDetailResponse
	err := c.get(ctx, "/v1/events/"+id, &detail)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.settleFetch(key, seq, err) {
		return
	}
	for i := range c.events {
		if c.events[i].ID == detail.Event.ID {
			c.events[i] = detail.Event
			return
		}
	}
	c.events = append(c.events, detail.Event)
}

// FetchBookings replaces the cached booking list wholesale on success.
func (c *Client) FetchBookings(ctx context.Context) {
	const key = "bookings"
	seq := c.beginFetch(key)

	var list model.BookingListResponse
	err := c.get(ctx, "/v1/bookings", &list)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.settleFetch(key, seq, err) {
		return
	}
	c.bookings = list.Bookings
}

// CreateBooking submits the payload to the admission endpoint. On success
// the booking is prepended to the cache and returned; on any failure the
// rejection reason is recorded and nil comes back.
func (c *Client) CreateBooking(ctx context.Context, payload model.BookingCreatePayload) *model.Booking {
	c.mu.Lock()
	c.creating = true
	c.lastErr = ""
	c.mu.Unlock()

	var created model.BookingCreateResponse
	err := c.post(ctx, "/v1/bookings", payload, &created)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.creating = false
	if err != nil {
		c.lastErr = err.Error()
		return nil
	}
	c.bookings = append([]model.Booking{created.Booking}, c.bookings...)
	b := created.Booking
	return &b
}

// beginFetch marks a fetch in flight and hands out its sequence number.
func (c *Client) beginFetch(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.lastErr = ""
	c.issued[key]++
	return c.issued[key]
}

// settleFetch decides, under c.mu, whether a completed fetch may touch the
// cache. A response older than one already applied for the same key is
// stale and discarded, error or not: the newer state has already won.
func (c *Client) settleFetch(key string, seq uint64, err error) bool {
	if seq == c.issued[key] {
		c.loading = false
	}
	if seq <= c.applied[key] {
		return false
	}
	if err != nil {
		c.lastErr = err.Error()
		return false
	}
	c.applied[key] = seq
	return true
}

// get performs a GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.doEnvelope(req, out)
}

// post performs a JSON POST and decodes the envelope's data into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doEnvelope(req, out)
}

// doEnvelope executes the request and unwraps the response envelope. The
// envelope error message wins over the HTTP status text when both are
// present, so users see "Only 2 tickets available" rather than
// "400 Bad Request".
func (c *Client) doEnvelope(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope model.APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s", envelope.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("request failed: %s", resp.Status)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
