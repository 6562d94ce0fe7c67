package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// Listing filters for the customer view.
const (
	FilterAll      = "all"
	FilterUpcoming = "upcoming"
	FilterPast     = "past"
)

// ListCustomerBookings returns a customer's bookings, newest first.
// The upcoming filter keeps in-flight bookings whose slot has not passed;
// past keeps everything else.
func (s *DefaultBookingService) ListCustomerBookings(customerID, filter string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	switch filter {
	case "", FilterAll:
	case FilterUpcoming:
		bookings = filterBookings(bookings, func(b models.Booking) bool {
			return s.isUpcoming(b)
		})
	case FilterPast:
		bookings = filterBookings(bookings, func(b models.Booking) bool {
			return !s.isUpcoming(b)
		})
	default:
		return nil, fmt.Errorf("unknown filter %q", filter)
	}

	sortNewestFirst(bookings)
	return bookings, nil
}

// ListBarberBookings returns a barber's incoming bookings, newest first,
// optionally narrowed to one status.
func (s *DefaultBookingService) ListBarberBookings(barberID, status string) ([]models.Booking, error) {
	bookings, err := s.Bookings.GetByBarber(barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	switch status {
	case "", FilterAll:
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
		bookings = filterBookings(bookings, func(b models.Booking) bool {
			return b.Status == status
		})
	default:
		return nil, fmt.Errorf("unknown status %q", status)
	}

	sortNewestFirst(bookings)
	return bookings, nil
}

// GetBooking fetches one booking visible to the given actor.
func (s *DefaultBookingService) GetBooking(actorID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.CustomerID != actorID && b.BarberID != actorID {
		return nil, ErrNotAuthorized
	}
	return b, nil
}

// AcceptBooking moves a pending booking to confirmed. Barber only.
func (s *DefaultBookingService) AcceptBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(bookingID, barberID, false, models.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, b.CustomerID, *b, "Booking confirmed",
		fmt.Sprintf("%s on %s at %s is confirmed", b.ServiceName, b.Date, b.Time))
	return b, nil
}

// DeclineBooking moves a pending booking to cancelled. Barber only.
func (s *DefaultBookingService) DeclineBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(bookingID, barberID, false, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, b.CustomerID, *b, "Booking declined",
		fmt.Sprintf("%s on %s at %s was declined", b.ServiceName, b.Date, b.Time))
	return b, nil
}

// CompleteBooking moves a confirmed booking to completed. Barber only.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, barberID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(bookingID, barberID, false, models.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, b.CustomerID, *b, "Visit completed",
		fmt.Sprintf("Thanks for visiting, your %s is done", b.ServiceName))
	return b, nil
}

// CancelBooking lets a customer cancel their own pending booking. Confirmed
// bookings can only be declined by the barber.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, customerID, bookingID string) (*models.Booking, error) {
	b, err := s.transition(bookingID, customerID, true, models.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	s.notifyStatusChange(ctx, b.BarberID, *b, "Booking cancelled",
		fmt.Sprintf("%s on %s at %s was cancelled by the customer", b.ServiceName, b.Date, b.Time))
	return b, nil
}

// DeleteBooking removes a terminal booking from either party's history.
func (s *DefaultBookingService) DeleteBooking(actorID, bookingID string) error {
	b, err := s.GetBooking(actorID, bookingID)
	if err != nil {
		return err
	}
	if !models.IsTerminalStatus(b.Status) {
		return ErrNotDeletable
	}
	if err := s.Bookings.Delete(bookingID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// transition authorizes the actor, checks the state machine, and persists
// the new status.
func (s *DefaultBookingService) transition(bookingID, actorID string, actorIsCustomer bool, to string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if actorIsCustomer {
		if b.CustomerID != actorID {
			return nil, ErrNotAuthorized
		}
		// Customers may only walk back their own pending requests.
		if b.Status != models.BookingStatusPending {
			return nil, ErrInvalidTransition
		}
	} else if b.BarberID != actorID {
		return nil, ErrNotAuthorized
	}

	if !models.CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}
	if err := s.Bookings.UpdateStatus(bookingID, to); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	b.Status = to
	return b, nil
}

func (s *DefaultBookingService) notifyStatusChange(ctx context.Context, recipientID string, b models.Booking, title, body string) {
	if s.Notifier == nil {
		return
	}
	data := map[string]string{"bookingId": b.ID, "status": b.Status, "type": "booking_status"}
	if err := s.Notifier.SendPushNotification(ctx, recipientID, title, body, data); err != nil {
		utils.GetLogger().Warn("Failed to send booking status notification",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) isUpcoming(b models.Booking) bool {
	if models.IsTerminalStatus(b.Status) {
		return false
	}
	start, err := b.StartTime(s.now().Location())
	if err != nil {
		return false
	}
	return !start.Before(s.now())
}

func filterBookings(bookings []models.Booking, keep func(models.Booking) bool) []models.Booking {
	filtered := bookings[:0]
	for _, b := range bookings {
		if keep(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// sortNewestFirst orders bookings by slot time descending, falling back to
// creation time for identical slots.
func sortNewestFirst(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ti, erri := bookings[i].StartTime(time.Local)
		tj, errj := bookings[j].StartTime(time.Local)
		if erri != nil || errj != nil {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
