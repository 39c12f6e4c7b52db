// Package validator implements the pure field validation rules for booking
// requests. Validation performs no I/O; the current ticket availability must
// be supplied by the caller so that the check runs against a fresh value
// rather than whatever the client cached at page load.
package validator

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/evently/event-booking/internal/model"
)

// Violation codes. Each field reports at most one violation, the first rule
// that fails for it.
const (
	CodeInvalidEventID        = "INVALID_EVENT_ID"
	CodeInvalidName           = "INVALID_NAME"
	CodeInvalidEmail          = "INVALID_EMAIL"
	CodeInvalidTicketCount    = "INVALID_TICKET_COUNT"
	CodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
)

const (
	minNameLen = 2
	maxNameLen = 100
	minTickets = 1
	maxTickets = 10
)

// Violation describes a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateBooking checks a candidate booking against the field rules and the
// supplied availability bound. On success it returns the payload with name
// trimmed and email lowercased and trimmed. On failure it returns the ordered
// list of violations (eventId, name, email, tickets).
func ValidateBooking(p model.BookingCreatePayload, availableTickets int) (model.BookingCreatePayload, []Violation) {
	var violations []Violation

	eventID := strings.TrimSpace(p.EventID)
	if eventID == "" {
		violations = append(violations, Violation{
			Field:   "eventId",
			Code:    CodeInvalidEventID,
			Message: "Event ID is required",
		})
	}

	name := strings.TrimSpace(p.Name)
	if len(name) < minNameLen {
		violations = append(violations, Violation{
			Field:   "name",
			Code:    CodeInvalidName,
			Message: fmt.Sprintf("Name must be at least %d characters", minNameLen),
		})
	} else if len(name) > maxNameLen {
		violations = append(violations, Violation{
			Field:   "name",
			Code:    CodeInvalidName,
			Message: fmt.Sprintf("Name must not exceed %d characters", maxNameLen),
		})
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))
	if email == "" || !validEmail(email) {
		violations = append(violations, Violation{
			Field:   "email",
			Code:    CodeInvalidEmail,
			Message: "Please enter a valid email address",
		})
	}

	switch {
	case p.Tickets < minTickets:
		violations = append(violations, Violation{
			Field:   "tickets",
			Code:    CodeInvalidTicketCount,
			Message: fmt.Sprintf("You must book at least %d ticket", minTickets),
		})
	case p.Tickets > maxTickets:
		violations = append(violations, Violation{
			Field:   "tickets",
			Code:    CodeInvalidTicketCount,
			Message: fmt.Sprintf("Maximum %d tickets per booking", maxTickets),
		})
	case p.Tickets > availableTickets:
		violations = append(violations, Violation{
			Field:   "tickets",
			Code:    CodeInsufficientInventory,
			Message: AvailabilityMessage(availableTickets),
		})
	}

	if len(violations) > 0 {
		return model.BookingCreatePayload{}, violations
	}
	return model.BookingCreatePayload{
		EventID: eventID,
		Name:    name,
		Email:   email,
		Tickets: p.Tickets,
	}, nil
}

// AvailabilityMessage embeds the current availability so the caller can show
// the user how many tickets remain. The admission service reuses it when a
// decrement loses the race after validation already passed.
func AvailabilityMessage(available int) string {
	if available == 1 {
		return "Only 1 ticket available"
	}
	return fmt.Sprintf("Only %d tickets available", available)
}

// validEmail checks address syntax. mail.ParseAddress accepts the
// "Name <addr>" form as well, which is not a bare address, so reject any
// input that parses to a different address string than what was given.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}
