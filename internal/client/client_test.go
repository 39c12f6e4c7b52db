package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/evently/event-booking/internal/config"
	"github.com/evently/event-booking/internal/handler"
	"github.com/evently/event-booking/internal/model"
	"github.com/evently/event-booking/internal/router"
	"github.com/evently/event-booking/internal/service"
	"github.com/evently/event-booking/internal/store"
)

// startServer runs the real API (full router, no redis) on an ephemeral port.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	events := store.NewEventStore([]model.Event{
		{ID: "1", Title: "Jazz Night", Date: "2024-12-15", Capacity: 150, AvailableTickets: 5, Price: 2500},
		{ID: "2", Title: "Tech Mixer", Date: "2025-01-10", Capacity: 100, AvailableTickets: 78, Price: 2500},
	})
	bookings := store.NewBookingStore(nil)
	admission := service.NewAdmissionService(events, bookings)

	e := echo.New()
	cfg := config.Config{Env: "test", DemoUserID: "user-123"}
	// nil redis client: cache and rate limiting pass through.
	router.Register(e, cfg, nil, handler.NewEventHandler(events), handler.NewBookingHandler(admission))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchEventsReplacesCache(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	c.FetchEvents(ctx)
	if c.Err() != "" {
		t.Fatalf("unexpected error: %s", c.Err())
	}
	if c.Loading() {
		t.Fatal("loading flag stuck")
	}
	got := c.Events()
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("unexpected events: %+v", got)
	}

	// A refetch replaces wholesale, it does not accumulate.
	c.FetchEvents(ctx)
	if got := c.Events(); len(got) != 2 {
		t.Fatalf("refetch duplicated entries: %d", len(got))
	}
}

func TestFetchEventByIDUpserts(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	// Fetching the same event twice yields one cache entry.
	c.FetchEventByID(ctx, "1")
	c.FetchEventByID(ctx, "1")
	got := c.Events()
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected single cached entry, got %+v", got)
	}

	// After a booking changes availability, a refetch carries the new value.
	if b := c.CreateBooking(ctx, model.BookingCreatePayload{
		EventID: "1", Name: "Jane Doe", Email: "jane@example.com", Tickets: 3,
	}); b == nil {
		t.Fatalf("booking failed: %s", c.Err())
	}
	c.FetchEventByID(ctx, "1")
	got = c.Events()
	if len(got) != 1 || got[0].AvailableTickets != 2 {
		t.Fatalf("expected refreshed availability 2, got %+v", got)
	}
}

func TestCreateBookingUpdatesCache(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	b := c.CreateBooking(ctx, model.BookingCreatePayload{
		EventID: "1", Name: "Jane Doe", Email: "jane@example.com", Tickets: 2,
	})
	if b == nil {
		t.Fatalf("booking failed: %s", c.Err())
	}
	if b.TotalPrice != 5000 || b.Status != model.BookingConfirmed {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if c.Creating() {
		t.Fatal("creating flag stuck")
	}

	b2 := c.CreateBooking(ctx, model.BookingCreatePayload{
		EventID: "2", Name: "Jane Doe", Email: "jane@example.com", Tickets: 1,
	})
	if b2 == nil {
		t.Fatalf("second booking failed: %s", c.Err())
	}
	got := c.Bookings()
	if len(got) != 2 || got[0].ID != b2.ID || got[1].ID != b.ID {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestCreateBookingFailureRecordsError(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	b := c.CreateBooking(ctx, model.BookingCreatePayload{
		EventID: "1", Name: "Jane Doe", Email: "jane@example.com", Tickets: 9,
	})
	if b != nil {
		t.Fatalf("expected nil booking, got %+v", b)
	}
	// The envelope message surfaces verbatim, not the HTTP status line.
	if c.Err() != "Only 5 tickets available" {
		t.Fatalf("unexpected error: %q", c.Err())
	}
	if len(c.Bookings()) != 0 {
		t.Fatalf("failed booking landed in cache: %+v", c.Bookings())
	}

	c.ClearError()
	if c.Err() != "" {
		t.Fatal("ClearError did not clear")
	}
}

// A slow older fetch must not clobber the result of a newer one that
// completed first.
func TestStaleFetchDiscarded(t *testing.T) {
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // first request answers last
		}
		list := model.EventListResponse{
			Events: []model.Event{{ID: fmt.Sprintf("gen-%d", n), Title: fmt.Sprintf("Response %d", n)}},
			Total:  1,
		}
		raw, _ := json.Marshal(list)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.APIResponse{Data: raw})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.FetchEvents(ctx) // first: blocked until released
	}()

	// Wait for the first request to reach the handler before issuing the
	// second, so the sequence order is deterministic.
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n >= 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	c.FetchEvents(ctx) // second: completes immediately
	if got := c.Events(); len(got) != 1 || got[0].ID != "gen-2" {
		t.Fatalf("expected second response applied, got %+v", got)
	}

	close(release)
	wg.Wait()

	// The first (stale) response must have been discarded.
	if got := c.Events(); len(got) != 1 || got[0].ID != "gen-2" {
		t.Fatalf("stale response clobbered cache: %+v", got)
	}
	if c.Loading() {
		t.Fatal("loading flag stuck after stale settle")
	}
}

func TestFetchBookings(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	if b := c.CreateBooking(ctx, model.BookingCreatePayload{
		EventID: "1", Name: "Jane Doe", Email: "jane@example.com", Tickets: 1,
	}); b == nil {
		t.Fatalf("booking failed: %s", c.Err())
	}

	// A fresh client sees the booking through the API.
	c2 := New(srv.URL)
	c2.FetchBookings(ctx)
	if c2.Err() != "" {
		t.Fatalf("unexpected error: %s", c2.Err())
	}
	got := c2.Bookings()
	if len(got) != 1 || got[0].EventID != "1" {
		t.Fatalf("unexpected bookings: %+v", got)
	}
}
