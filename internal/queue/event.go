// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a booking is admitted. It carries
// the snapshot fields downstream consumers need for logging or notification
// without querying the stores.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	EventTitle  string `json:"event_title"`
	EventDate   string `json:"event_date"`
	Tickets     int    `json:"tickets"`
	TotalPrice  int    `json:"total_price_cents"`
	Attendee    string `json:"attendee"`
	ConfirmedAt string `json:"confirmed_at"`
}
