package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/evently/event-booking/internal/model"
	"github.com/evently/event-booking/internal/store"
)

// EventHandler exposes read and delete operations over the event inventory.
type EventHandler struct {
	Events *store.EventStore
}

// NewEventHandler constructs an EventHandler. The store must be non-nil.
func NewEventHandler(events *store.EventStore) *EventHandler {
	if events == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Events: events}
}

// List handles GET /v1/events. Events come back in insertion order.
func (h *EventHandler) List(c echo.Context) error {
	events := h.Events.List()
	return respondData(c, http.StatusOK, model.EventListResponse{
		Events: events,
		Total:  len(events),
	})
}

// Get handles GET /v1/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	ev, err := h.Events.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return respondNotFound(c, model.CodeEventNotFound, "Event not found")
		}
		return respondInternal(c, err)
	}
	return respondData(c, http.StatusOK, model.EventDetailResponse{Event: ev})
}

// Delete handles DELETE /v1/events/:id and answers with the remaining
// events. Bookings already made against the event keep their snapshots.
func (h *EventHandler) Delete(c echo.Context) error {
	remaining, err := h.Events.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return respondNotFound(c, model.CodeEventNotFound, "Event not found")
		}
		return respondInternal(c, err)
	}
	return respondData(c, http.StatusOK, model.EventListResponse{
		Events: remaining,
		Total:  len(remaining),
	})
}
