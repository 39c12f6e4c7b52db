// Package store holds the in-process state of the service: the event
// inventory and the booking history. It is the single source of truth for
// ticket availability; everything else (handlers, clients) works on copies.
package store

import "errors"

// ErrEventNotFound is returned when a referenced event does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrInsufficientInventory is returned when a decrement asks for more
// tickets than the event currently has available. The store is left
// unchanged in that case. Handlers translate this into an HTTP 400.
var ErrInsufficientInventory = errors.New("insufficient tickets available")
