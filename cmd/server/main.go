// Entry point: wires the stores, admission service and HTTP layer together
// and starts the server.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/evently/event-booking/internal/config"
	"github.com/evently/event-booking/internal/handler"
	"github.com/evently/event-booking/internal/queue"
	"github.com/evently/event-booking/internal/router"
	"github.com/evently/event-booking/internal/service"
	"github.com/evently/event-booking/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Inventory and booking history live in this process: seeded once at
	// startup, torn down with it.
	events := store.NewEventStore(store.SeedEvents())
	bookings := store.NewBookingStore(store.SeedBookings())

	admission := service.NewAdmissionService(events, bookings)
	if queue.BrokerURL() != "" {
		admission.SetPublisher(queue.PublishBookingConfirmed)
		go queue.StartBookingConsumer()
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, rdb,
		handler.NewEventHandler(events),
		handler.NewBookingHandler(admission),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
