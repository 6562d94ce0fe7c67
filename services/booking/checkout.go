package booking

import (
	"context"
	"fmt"
	"sort"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout turns a cart into pending bookings, one per distinct service.
// All lines share the barber, date, and slot. Lines are written in a single
// batch without a transactional guarantee; on failure the caller should
// retry the whole checkout.
func (s *DefaultBookingService) Checkout(ctx context.Context, customerID string, req CheckoutRequest) ([]models.Booking, error) {
	if len(req.Cart) == 0 {
		return nil, ErrEmptyCart
	}

	barber, err := s.Barbers.GetByID(req.BarberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber: %w", err)
	}
	if barber == nil {
		return nil, ErrBarberNotFound
	}

	if err := validateBookingDate(req.Date, s.now(), s.windowDays()); err != nil {
		return nil, err
	}

	slots, err := GenerateTimeSlots(barber.WorkingHours.Open, barber.WorkingHours.Close)
	if err != nil {
		return nil, fmt.Errorf("barber %s has invalid working hours: %w", req.BarberID, err)
	}
	if !containsSlot(slots, req.Time) {
		return nil, ErrInvalidSlot
	}

	catalogue, err := s.Catalog.GetByBarber(req.BarberID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	byID := make(map[string]models.Service, len(catalogue))
	for _, svc := range catalogue {
		byID[svc.ID] = svc
	}

	// Deterministic write order regardless of map iteration.
	serviceIDs := make([]string, 0, len(req.Cart))
	for id := range req.Cart {
		serviceIDs = append(serviceIDs, id)
	}
	sort.Strings(serviceIDs)

	now := s.now()
	bookings := make([]models.Booking, 0, len(serviceIDs))
	for _, serviceID := range serviceIDs {
		qty := req.Cart[serviceID]
		if qty <= 0 {
			return nil, fmt.Errorf("service %s has an invalid quantity %d", serviceID, qty)
		}
		svc, ok := byID[serviceID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
		}

		bookings = append(bookings, models.Booking{
			ID:           uuid.New().String(),
			CustomerID:   customerID,
			BarberID:     req.BarberID,
			ServiceID:    svc.ID,
			ServiceName:  svc.Name,
			ServicePrice: svc.Price,
			Quantity:     qty,
			Date:         req.Date,
			Time:         req.Time,
			Status:       models.BookingStatusPending,
			Notes:        req.Notes,
			CreatedAt:    now,
		})
	}

	if err := s.Bookings.CreateMany(bookings); err != nil {
		return nil, fmt.Errorf("failed to save bookings: %w", err)
	}

	s.notifyBarberOfCheckout(ctx, barber.UserID, bookings)
	s.scheduleReminder(bookings[0])

	return bookings, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// notifyBarberOfCheckout pushes a new-booking notification to the shop
// owner. Delivery is best effort.
func (s *DefaultBookingService) notifyBarberOfCheckout(ctx context.Context, barberUserID string, bookings []models.Booking) {
	if s.Notifier == nil {
		return
	}

	first := bookings[0]
	body := fmt.Sprintf("%s on %s at %s", first.ServiceName, first.Date, first.Time)
	if extra := len(bookings) - 1; extra > 0 {
		body = fmt.Sprintf("%s and %d more on %s at %s", first.ServiceName, extra, first.Date, first.Time)
	}

	data := map[string]string{"bookingId": first.ID, "type": "booking_created"}
	if err := s.Notifier.SendPushNotification(ctx, barberUserID, "New booking request", body, data); err != nil {
		utils.GetLogger().Warn("Failed to notify barber of new booking",
			zap.String("barberId", first.BarberID), zap.Error(err))
	}
}

// scheduleReminder enqueues a pre-appointment reminder for the customer.
// One reminder covers the whole checkout since all lines share a slot.
func (s *DefaultBookingService) scheduleReminder(b models.Booking) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleBookingReminder(b); err != nil {
		utils.GetLogger().Warn("Failed to schedule booking reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}
