package store

import (
	"sync"

	"github.com/evently/event-booking/internal/model"
)

// BookingStore keeps admitted bookings per user, newest first. Bookings are
// append-only: the admission service creates them and nothing mutates them
// afterwards.
type BookingStore struct {
	mu     sync.RWMutex
	byUser map[string][]model.Booking
}

// NewBookingStore builds an empty booking store, optionally pre-loaded with
// historical bookings (used for the demo seed data).
func NewBookingStore(seed []model.Booking) *BookingStore {
	s := &BookingStore{byUser: make(map[string][]model.Booking)}
	for _, b := range seed {
		s.byUser[b.UserID] = append(s.byUser[b.UserID], b)
	}
	return s
}

// Add stores a booking at the head of the user's list so listings come back
// newest first.
func (s *BookingStore) Add(b model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.byUser[b.UserID]
	updated := make([]model.Booking, 0, len(existing)+1)
	updated = append(updated, b)
	updated = append(updated, existing...)
	s.byUser[b.UserID] = updated
}

// ListByUser returns copies of the user's bookings, newest first. Unknown
// users get an empty slice, not an error.
func (s *BookingStore) ListByUser(userID string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, len(s.byUser[userID]))
	copy(out, s.byUser[userID])
	return out
}
