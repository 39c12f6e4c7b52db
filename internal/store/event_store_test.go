package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/evently/event-booking/internal/model"
)

func testEvents() []model.Event {
	return []model.Event{
		{ID: "a", Title: "First", Capacity: 10, AvailableTickets: 5, Price: 2500},
		{ID: "b", Title: "Second", Capacity: 20, AvailableTickets: 20, Price: 1000},
		{ID: "c", Title: "Third", Capacity: 8, AvailableTickets: 3, Price: 4000},
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := NewEventStore(testEvents())
	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 events, got %d", len(list))
	}
	for i, id := range []string{"a", "b", "c"} {
		if list[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}
}

func TestGetUnknownEvent(t *testing.T) {
	s := NewEventStore(testEvents())
	if _, err := s.Get("missing"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewEventStore(testEvents())
	ev, err := s.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	ev.AvailableTickets = 0

	again, _ := s.Get("a")
	if again.AvailableTickets != 5 {
		t.Fatalf("store mutated through returned copy: %d", again.AvailableTickets)
	}
}

func TestDecrementAvailability(t *testing.T) {
	s := NewEventStore(testEvents())
	ev, err := s.DecrementAvailability("a", 3)
	if err != nil {
		t.Fatal(err)
	}
	if ev.AvailableTickets != 2 {
		t.Fatalf("expected 2 remaining, got %d", ev.AvailableTickets)
	}
	if got, _ := s.Get("a"); got.AvailableTickets != 2 {
		t.Fatalf("store not updated: %d", got.AvailableTickets)
	}
}

func TestDecrementShortfallLeavesInventoryUnchanged(t *testing.T) {
	s := NewEventStore(testEvents())
	ev, err := s.DecrementAvailability("c", 4)
	if !errors.Is(err, ErrInsufficientInventory) {
		t.Fatalf("expected ErrInsufficientInventory, got %v", err)
	}
	if ev.AvailableTickets != 3 {
		t.Fatalf("expected current availability 3 in rejection, got %d", ev.AvailableTickets)
	}
	if got, _ := s.Get("c"); got.AvailableTickets != 3 {
		t.Fatalf("shortfall mutated inventory: %d", got.AvailableTickets)
	}
}

func TestDecrementUnknownEvent(t *testing.T) {
	s := NewEventStore(testEvents())
	if _, err := s.DecrementAvailability("missing", 1); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

// Two concurrent requests reading "3 available" and asking for 2 each must
// not both succeed.
func TestConcurrentDecrementSingleWinner(t *testing.T) {
	s := NewEventStore([]model.Event{{ID: "x", Capacity: 10, AvailableTickets: 3}})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.DecrementAvailability("x", 2)
		}(i)
	}
	wg.Wait()

	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrInsufficientInventory):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || insufficient != 1 {
		t.Fatalf("expected exactly one winner, got ok=%d insufficient=%d", ok, insufficient)
	}
	if got, _ := s.Get("x"); got.AvailableTickets != 1 {
		t.Fatalf("expected 1 remaining, got %d", got.AvailableTickets)
	}
}

// The invariant 0 <= available <= capacity must hold under arbitrary
// concurrent load.
func TestConcurrentDecrementNeverNegative(t *testing.T) {
	s := NewEventStore([]model.Event{{ID: "x", Capacity: 50, AvailableTickets: 50}})

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.DecrementAvailability("x", 3)
		}()
	}
	wg.Wait()

	got, _ := s.Get("x")
	if got.AvailableTickets < 0 || got.AvailableTickets > got.Capacity {
		t.Fatalf("invariant violated: available=%d capacity=%d", got.AvailableTickets, got.Capacity)
	}
	// 30 attempts of 3 tickets against 50: 16 can fit (48), the rest fail.
	if got.AvailableTickets != 2 {
		t.Fatalf("expected 2 remaining, got %d", got.AvailableTickets)
	}
}

func TestDeleteEvent(t *testing.T) {
	s := NewEventStore(testEvents())
	remaining, err := s.Delete("b")
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 2 || remaining[0].ID != "a" || remaining[1].ID != "c" {
		t.Fatalf("unexpected remaining list: %+v", remaining)
	}
	if _, err := s.Get("b"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("deleted event still present")
	}
	if _, err := s.Delete("b"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound on double delete, got %v", err)
	}
}

func TestSeedClampsInvariant(t *testing.T) {
	s := NewEventStore([]model.Event{{ID: "x", Capacity: 5, AvailableTickets: 9}})
	got, _ := s.Get("x")
	if got.AvailableTickets != 5 {
		t.Fatalf("expected availability clamped to capacity, got %d", got.AvailableTickets)
	}
}
