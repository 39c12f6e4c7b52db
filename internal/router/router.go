// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/evently/event-booking/internal/config"
	"github.com/evently/event-booking/internal/handler"
	"github.com/evently/event-booking/internal/middleware"
)

// Register wires every route of the service onto the Echo instance.
//
// The identity middleware runs on all /v1 routes so handlers can always read
// the caller from context. The redis-backed response cache and rate limiter
// are passthroughs when rdb is nil.
func Register(e *echo.Echo, cfg config.Config, rdb *redis.Client, events *handler.EventHandler, bookings *handler.BookingHandler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.Identity(cfg.JWTSecret, cfg.DemoUserID))
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	v1.GET("/events", events.List, cache)
	v1.GET("/events/:id", events.Get, cache)
	v1.DELETE("/events/:id", events.Delete)

	v1.GET("/bookings", bookings.List)
	v1.POST("/bookings", bookings.Create)
}
