package model

import "time"

// Location describes where an event takes place.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Organizer identifies who runs an event. Optional on an event.
type Organizer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Event represents a bookable event with a finite ticket inventory.
//
// AvailableTickets is owned exclusively by the inventory store and always
// satisfies 0 <= AvailableTickets <= Capacity. Price is an integer amount
// in cents to avoid floating point rounding.
type Event struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Date             string     `json:"date"` // ISO 8601 date, e.g. "2024-12-15"
	Time             string     `json:"time"` // wall-clock time, e.g. "20:00"
	Location         Location   `json:"location"`
	Image            string     `json:"image"`
	Capacity         int        `json:"capacity"`
	AvailableTickets int        `json:"availableTickets"`
	Price            int        `json:"price"` // cents
	Category         string     `json:"category,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Organizer        *Organizer `json:"organizer,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// EventListResponse is the payload of GET /v1/events and DELETE /v1/events/:id.
type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

// EventDetailResponse is the payload of GET /v1/events/:id.
type EventDetailResponse struct {
	Event Event `json:"event"`
}
