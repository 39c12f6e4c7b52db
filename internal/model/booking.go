package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking. Bookings are
// created CONFIRMED by the admission service; the other states exist for
// display of historical data only, there is no transition flow.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// AttendeeInfo carries the attendee contact details captured at booking time.
type AttendeeInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking records an admitted reservation of tickets for an event.
//
// EventTitle, EventDate and EventImage are snapshots of the event taken at
// admission time so that booking history survives later event mutation or
// deletion; they are never re-derived. TotalPrice equals Tickets times the
// event price at admission time and is immutable afterwards.
type Booking struct {
	ID           string        `json:"id"`
	EventID      string        `json:"eventId"`
	UserID       string        `json:"userId"`
	EventTitle   string        `json:"eventTitle"`
	EventDate    string        `json:"eventDate"`
	EventImage   string        `json:"eventImage"`
	Tickets      int           `json:"tickets"`
	TotalPrice   int           `json:"totalPrice"` // cents
	Status       BookingStatus `json:"status"`
	AttendeeInfo AttendeeInfo  `json:"attendeeInfo"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// BookingCreatePayload is the request body of POST /v1/bookings.
type BookingCreatePayload struct {
	EventID string `json:"eventId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Tickets int    `json:"tickets"`
}

// BookingListResponse is the payload of GET /v1/bookings.
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}

// BookingCreateResponse is the payload of a successful POST /v1/bookings.
type BookingCreateResponse struct {
	Booking Booking `json:"booking"`
	Message string  `json:"message,omitempty"`
}
