// Package service implements the booking admission logic: the server-side
// decision of whether a booking request is allowed to consume inventory.
package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/evently/event-booking/internal/model"
	"github.com/evently/event-booking/internal/queue"
	"github.com/evently/event-booking/internal/store"
	"github.com/evently/event-booking/internal/validator"
)

// Rejection is the structured outcome of a refused booking request. It
// satisfies error so the service can return it on the error path, and it
// carries everything the HTTP layer needs to build the envelope without
// leaking internal detail.
type Rejection struct {
	Status  int            // HTTP status the boundary should answer with
	Code    string         // envelope error code
	Message string         // user-facing message
	Details map[string]any // optional structured detail (field violations)
}

func (r *Rejection) Error() string { return r.Message }

// PublishFunc delivers a confirmed-booking event to the message broker.
// A nil publisher disables messaging.
type PublishFunc func(ctx context.Context, ev queue.BookingConfirmedEvent) error

// AdmissionService re-validates booking requests against live inventory and
// either admits them (decrementing availability and recording a booking
// snapshot) or rejects them. It performs no side effects on rejection.
type AdmissionService struct {
	events   *store.EventStore
	bookings *store.BookingStore
	publish  PublishFunc
}

// NewAdmissionService wires the service to its stores. Both must be non-nil.
func NewAdmissionService(events *store.EventStore, bookings *store.BookingStore) *AdmissionService {
	if events == nil || bookings == nil {
		panic("nil store passed to NewAdmissionService")
	}
	return &AdmissionService{events: events, bookings: bookings}
}

// SetPublisher installs the confirmed-booking publisher. Intended to be
// called once during wiring, before the service starts taking requests.
func (s *AdmissionService) SetPublisher(fn PublishFunc) { s.publish = fn }

// ListBookings returns the caller's bookings, newest first.
func (s *AdmissionService) ListBookings(userID string) []model.Booking {
	return s.bookings.ListByUser(userID)
}

// CreateBooking runs a request through received -> validated -> admitted.
//
// The availability used for validation is read from the store at request
// time, and the final check happens inside the store's per-event critical
// section, so a request validated against stale data still cannot
// over-consume inventory: it is rejected at the decrement instead.
func (s *AdmissionService) CreateBooking(ctx context.Context, userID string, payload model.BookingCreatePayload) (model.Booking, error) {
	// received: all four fields must be present. A zero ticket count is
	// indistinguishable from an absent field in JSON and is treated as one.
	if payload.EventID == "" || payload.Name == "" || payload.Email == "" || payload.Tickets == 0 {
		return model.Booking{}, &Rejection{
			Status:  http.StatusBadRequest,
			Code:    model.CodeMissingFields,
			Message: "Missing required fields",
		}
	}

	// validated: field checks against the current inventory value, never a
	// value cached earlier in the request lifecycle.
	ev, err := s.events.Get(payload.EventID)
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return model.Booking{}, &Rejection{
				Status:  http.StatusNotFound,
				Code:    model.CodeEventNotFound,
				Message: "Event not found",
			}
		}
		return model.Booking{}, internalRejection()
	}

	normalized, violations := validator.ValidateBooking(payload, ev.AvailableTickets)
	if len(violations) > 0 {
		return model.Booking{}, rejectionFromViolations(violations)
	}

	// admitted: atomic check-and-decrement. Losing a race here surfaces as
	// an inventory rejection with the fresh availability; no booking is
	// partially constructed.
	updated, err := s.events.DecrementAvailability(normalized.EventID, normalized.Tickets)
	switch {
	case errors.Is(err, store.ErrEventNotFound):
		return model.Booking{}, &Rejection{
			Status:  http.StatusNotFound,
			Code:    model.CodeEventNotFound,
			Message: "Event not found",
		}
	case errors.Is(err, store.ErrInsufficientInventory):
		return model.Booking{}, &Rejection{
			Status:  http.StatusBadRequest,
			Code:    model.CodeInsufficientInventory,
			Message: validator.AvailabilityMessage(updated.AvailableTickets),
		}
	case err != nil:
		return model.Booking{}, internalRejection()
	}

	now := time.Now().UTC()
	booking := model.Booking{
		ID:         uuid.New().String(),
		EventID:    updated.ID,
		UserID:     userID,
		EventTitle: updated.Title,
		EventDate:  updated.Date,
		EventImage: updated.Image,
		Tickets:    normalized.Tickets,
		TotalPrice: updated.Price * normalized.Tickets,
		Status:     model.BookingConfirmed,
		AttendeeInfo: model.AttendeeInfo{
			Name:  normalized.Name,
			Email: normalized.Email,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.bookings.Add(booking)

	if s.publish != nil {
		go func(b model.Booking) {
			pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = s.publish(pubCtx, queue.BookingConfirmedEvent{
				BookingID:   b.ID,
				EventID:     b.EventID,
				UserID:      b.UserID,
				EventTitle:  b.EventTitle,
				EventDate:   b.EventDate,
				Tickets:     b.Tickets,
				TotalPrice:  b.TotalPrice,
				Attendee:    b.AttendeeInfo.Name,
				ConfirmedAt: b.CreatedAt.Format(time.RFC3339),
			})
		}(booking)
	}

	return booking, nil
}

// rejectionFromViolations maps validator output to a rejection. A shortfall
// is reported as INSUFFICIENT_INVENTORY so callers can tell "fix your input"
// apart from "fewer tickets than you asked for"; everything else is a plain
// validation failure. The full violation list rides along in the details.
func rejectionFromViolations(violations []validator.Violation) *Rejection {
	rej := &Rejection{
		Status:  http.StatusBadRequest,
		Code:    model.CodeValidationFailed,
		Message: violations[0].Message,
		Details: map[string]any{"violations": violations},
	}
	for _, v := range violations {
		if v.Code == validator.CodeInsufficientInventory {
			rej.Code = model.CodeInsufficientInventory
			rej.Message = v.Message
			break
		}
	}
	return rej
}

func internalRejection() *Rejection {
	return &Rejection{
		Status:  http.StatusInternalServerError,
		Code:    model.CodeInternalError,
		Message: "Internal server error",
	}
}
