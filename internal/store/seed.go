package store

import (
	"time"

	"github.com/evently/event-booking/internal/model"
)

// DemoUserID is the fixed identity the demo deployment books under when no
// bearer token is presented. It only appears at the outermost boundary; the
// core always receives the identity as an explicit parameter.
const DemoUserID = "user-123"

// SeedEvents returns the demo event catalogue the store is initialized with
// at process start.
func SeedEvents() []model.Event {
	return []model.Event{
		{
			ID:          "1",
			Title:       "Jazz Night at Downtown Lounge",
			Description: "Join us for an unforgettable evening of smooth jazz featuring local artists. Perfect for a romantic date or night out with friends.",
			Date:        "2024-12-15",
			Time:        "20:00",
			Location: model.Location{
				Name:    "Downtown Lounge",
				Address: "123 Main Street",
				City:    "New York",
				Country: "USA",
			},
			Image:            "/images/events/jazz-night.jpg",
			Capacity:         150,
			AvailableTickets: 45,
			Price:            3500,
			Category:         "Music",
			Tags:             []string{"Jazz", "Live Music", "Nightlife"},
			Organizer:        &model.Organizer{Name: "Downtown Events", Email: "events@downtown.com"},
			CreatedAt:        time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 11, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Tech Startup Networking Mixer",
			Description: "Connect with fellow entrepreneurs, investors, and tech enthusiasts. Free drinks and appetizers included. Great opportunity to expand your network.",
			Date:        "2024-12-18",
			Time:        "18:30",
			Location: model.Location{
				Name:    "Innovation Hub",
				Address: "456 Tech Boulevard",
				City:    "San Francisco",
				Country: "USA",
			},
			Image:            "/images/events/networking.jpg",
			Capacity:         100,
			AvailableTickets: 78,
			Price:            2500,
			Category:         "Networking",
			Tags:             []string{"Tech", "Networking", "Startups"},
			Organizer:        &model.Organizer{Name: "Tech Connect", Email: "hello@techconnect.io"},
			CreatedAt:        time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 11, 10, 11, 20, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Yoga & Wellness Retreat",
			Description: "A full day of yoga sessions, meditation, and wellness workshops. Includes healthy lunch and snacks. All levels welcome.",
			Date:        "2024-12-20",
			Time:        "09:00",
			Location: model.Location{
				Name:    "Serenity Park",
				Address: "789 Wellness Way",
				City:    "Los Angeles",
				Country: "USA",
			},
			Image:            "/images/events/yoga-retreat.jpg",
			Capacity:         50,
			AvailableTickets: 12,
			Price:            7500,
			Category:         "Wellness",
			Tags:             []string{"Yoga", "Meditation", "Wellness"},
			Organizer:        &model.Organizer{Name: "Mindful Living", Email: "info@mindfulliving.com"},
			CreatedAt:        time.Date(2024, 11, 3, 8, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 11, 12, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Art Gallery Opening: Modern Abstracts",
			Description: "Exclusive opening night for our new modern abstract art collection. Meet the artists, enjoy wine and cheese, and explore stunning contemporary works.",
			Date:        "2024-12-22",
			Time:        "19:00",
			Location: model.Location{
				Name:    "Metropolitan Gallery",
				Address: "321 Arts Avenue",
				City:    "Chicago",
				Country: "USA",
			},
			Image:            "/images/events/art-gallery.jpg",
			Capacity:         80,
			AvailableTickets: 32,
			Price:            4000,
			Category:         "Arts",
			Tags:             []string{"Art", "Gallery", "Culture"},
			Organizer:        &model.Organizer{Name: "Metropolitan Gallery", Email: "gallery@metro-art.com"},
			CreatedAt:        time.Date(2024, 11, 7, 12, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 11, 14, 10, 15, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Title:       "Food & Wine Festival",
			Description: "Sample dishes from top local restaurants and wines from regional vineyards. Live cooking demonstrations and entertainment throughout the day.",
			Date:        "2024-12-28",
			Time:        "14:00",
			Location: model.Location{
				Name:    "Central Park",
				Address: "100 Park Drive",
				City:    "New York",
				Country: "USA",
			},
			Image:            "/images/events/food-wine.jpg",
			Capacity:         300,
			AvailableTickets: 156,
			Price:            6000,
			Category:         "Food & Drink",
			Tags:             []string{"Food", "Wine", "Festival"},
			Organizer:        &model.Organizer{Name: "City Events Co.", Email: "info@cityevents.com"},
			CreatedAt:        time.Date(2024, 11, 10, 7, 0, 0, 0, time.UTC),
			UpdatedAt:        time.Date(2024, 11, 18, 13, 30, 0, 0, time.UTC),
		},
	}
}

// SeedBookings returns the demo user's historical bookings.
func SeedBookings() []model.Booking {
	return []model.Booking{
		{
			ID:         "booking-1",
			EventID:    "1",
			UserID:     DemoUserID,
			EventTitle: "Jazz Night at Downtown Lounge",
			EventDate:  "2024-12-15",
			EventImage: "/images/events/jazz-night.jpg",
			Tickets:    2,
			TotalPrice: 7000,
			Status:     model.BookingConfirmed,
			AttendeeInfo: model.AttendeeInfo{
				Name:  "John Doe",
				Email: "john.doe@example.com",
			},
			CreatedAt: time.Date(2024, 11, 16, 10, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 11, 16, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:         "booking-2",
			EventID:    "3",
			UserID:     DemoUserID,
			EventTitle: "Yoga & Wellness Retreat",
			EventDate:  "2024-12-20",
			EventImage: "/images/events/yoga-retreat.jpg",
			Tickets:    1,
			TotalPrice: 7500,
			Status:     model.BookingConfirmed,
			AttendeeInfo: model.AttendeeInfo{
				Name:  "John Doe",
				Email: "john.doe@example.com",
			},
			CreatedAt: time.Date(2024, 11, 17, 14, 20, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 11, 17, 14, 20, 0, 0, time.UTC),
		},
	}
}
