package booking

import (
	"context"
	"time"

	barberRepo "barberbook/database/repository/barber"
	bookingRepo "barberbook/database/repository/booking"
	catalogRepo "barberbook/database/repository/catalog"
	"barberbook/models"
	"barberbook/services/notification"
	"barberbook/services/tasks"
)

// CheckoutRequest is one cart submission. Every line in the cart shares the
// barber, date, and time slot.
type CheckoutRequest struct {
	BarberID string               `json:"barberId"`
	Cart     models.SelectionCart `json:"cart"`
	Date     string               `json:"date"` // "2006-01-02"
	Time     string               `json:"time"` // "15:04"
	Notes    string               `json:"notes,omitempty"`
}

// SlotBucket groups a day's slots for display.
type SlotBucket struct {
	Label string   `json:"label"`
	Slots []string `json:"slots"`
}

// RevenueStats summarizes a barber's completed bookings over a period.
type RevenueStats struct {
	Period         string             `json:"period"`
	TotalRevenue   float64            `json:"totalRevenue"`
	TotalCount     int                `json:"totalCount"`
	AverageRevenue float64            `json:"averageRevenue"`
	Services       []ServiceBreakdown `json:"services"`
}

// ServiceBreakdown is one service's share of the revenue summary.
type ServiceBreakdown struct {
	ServiceName string  `json:"serviceName"`
	Count       int     `json:"count"`
	Revenue     float64 `json:"revenue"`
}

type BookingService interface {
	// AvailableSlots returns the bookable dates and bucketed time slots
	// for a barber.
	AvailableSlots(barberID string) ([]string, []SlotBucket, error)

	// Checkout turns a cart into one pending booking per distinct service.
	Checkout(ctx context.Context, customerID string, req CheckoutRequest) ([]models.Booking, error)

	// Listings.
	ListCustomerBookings(customerID, filter string) ([]models.Booking, error)
	ListBarberBookings(barberID, status string) ([]models.Booking, error)
	GetBooking(actorID, bookingID string) (*models.Booking, error)

	// State machine transitions.
	AcceptBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error)
	DeclineBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, customerID, bookingID string) (*models.Booking, error)
	DeleteBooking(actorID, bookingID string) error

	// Revenue reports over completed bookings.
	Revenue(barberID, period string) (*RevenueStats, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings   bookingRepo.BookingRepository
	Barbers    barberRepo.BarberRepository
	Catalog    catalogRepo.CatalogRepository
	Notifier   notification.NotificationService
	Reminders  tasks.ReminderScheduler
	WindowDays int

	// Now is the clock used for window validation and listing splits.
	// Left nil it falls back to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 30
}
