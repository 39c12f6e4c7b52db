package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/evently/event-booking/internal/model"
	"github.com/evently/event-booking/internal/service"
)

// BookingHandler exposes booking listing and creation. Creation delegates the
// whole admission decision to the service; the handler only decodes the body
// and encodes the outcome.
type BookingHandler struct {
	Admission *service.AdmissionService
}

// NewBookingHandler constructs a BookingHandler. The service must be non-nil.
func NewBookingHandler(admission *service.AdmissionService) *BookingHandler {
	if admission == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Admission: admission}
}

// List handles GET /v1/bookings for the caller identity resolved by the
// identity middleware.
func (h *BookingHandler) List(c echo.Context) error {
	bookings := h.Admission.ListBookings(currentUser(c))
	return respondData(c, http.StatusOK, model.BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	})
}

// Create handles POST /v1/bookings. An unparseable body is a 400
// INVALID_JSON, not a 500; all other rejections carry the code and status
// chosen by the admission service.
func (h *BookingHandler) Create(c echo.Context) error {
	var payload model.BookingCreatePayload
	if err := c.Bind(&payload); err != nil {
		return respondError(c, http.StatusBadRequest, model.APIError{
			Code:    model.CodeInvalidJSON,
			Message: "Invalid JSON in request body",
		})
	}

	booking, err := h.Admission.CreateBooking(c.Request().Context(), currentUser(c), payload)
	if err != nil {
		return respondRejection(c, err)
	}
	return respondDataMessage(c, http.StatusCreated, model.BookingCreateResponse{
		Booking: booking,
	}, "Booking created successfully")
}
