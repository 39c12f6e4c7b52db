package store

import (
	"sync"
	"time"

	"github.com/evently/event-booking/internal/model"
)

// eventEntry pairs an event with its own lock. Holding entry.mu makes the
// read-check-write sequence of a booking admission atomic for that event
// while admissions for other events proceed in parallel.
type eventEntry struct {
	mu sync.Mutex
	ev model.Event
}

// EventStore keeps the event inventory in memory. The outer lock guards the
// map and insertion order; each entry carries a per-event lock for the
// availability counter (see eventEntry).
//
// The store is seeded once at construction and torn down with the process.
// There is deliberately no persistence: availability is process-owned state.
type EventStore struct {
	mu    sync.RWMutex
	byID  map[string]*eventEntry
	order []string
}

// NewEventStore builds a store holding the given events in insertion order.
// Events whose availability exceeds capacity are clamped so the inventory
// invariant holds from the start.
func NewEventStore(seed []model.Event) *EventStore {
	s := &EventStore{byID: make(map[string]*eventEntry, len(seed))}
	for _, ev := range seed {
		if ev.AvailableTickets > ev.Capacity {
			ev.AvailableTickets = ev.Capacity
		}
		if ev.AvailableTickets < 0 {
			ev.AvailableTickets = 0
		}
		if _, dup := s.byID[ev.ID]; dup {
			continue
		}
		s.byID[ev.ID] = &eventEntry{ev: ev}
		s.order = append(s.order, ev.ID)
	}
	return s
}

// List returns copies of all events in insertion order.
func (s *EventStore) List() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, 0, len(s.order))
	for _, id := range s.order {
		e := s.byID[id]
		e.mu.Lock()
		out = append(out, e.ev)
		e.mu.Unlock()
	}
	return out
}

// Len reports the number of events currently held.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Get returns a copy of the event or ErrEventNotFound.
func (s *EventStore) Get(id string) (model.Event, error) {
	s.mu.RLock()
	e, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return model.Event{}, ErrEventNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ev, nil
}

// DecrementAvailability atomically reduces the event's available tickets by
// the requested amount. The check and the write happen under the per-event
// lock, so two concurrent requests can never both pass the check when only
// one of them fits.
//
// On success the updated event copy is returned. When the request exceeds
// the current availability the store is left untouched and the *current*
// event copy is returned together with ErrInsufficientInventory, so callers
// can report how many tickets actually remain.
func (s *EventStore) DecrementAvailability(id string, tickets int) (model.Event, error) {
	s.mu.RLock()
	e, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return model.Event{}, ErrEventNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tickets < 1 || tickets > e.ev.AvailableTickets {
		return e.ev, ErrInsufficientInventory
	}
	e.ev.AvailableTickets -= tickets
	e.ev.UpdatedAt = time.Now().UTC()
	return e.ev, nil
}

// Delete removes the event and returns the remaining events in insertion
// order. ErrEventNotFound is returned when the id is unknown.
func (s *EventStore) Delete(id string) ([]model.Event, error) {
	s.mu.Lock()
	if _, ok := s.byID[id]; !ok {
		s.mu.Unlock()
		return nil, ErrEventNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return s.List(), nil
}
