package booking

import (
	"context"
	"errors"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (r *fakeBookingRepo) CreateMany(bookings []models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings = append(r.bookings, bookings...)
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByBarber(barberID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetCompletedByBarber(barberID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.Status == models.BookingStatusCompleted {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(id, status string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("booking not found")
}

func (r *fakeBookingRepo) Delete(id string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return errors.New("booking not found")
}

// fakeBarberRepo serves a fixed set of barber profiles.
type fakeBarberRepo struct {
	barbers map[string]models.Barber
}

func (r *fakeBarberRepo) GetByID(id string) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBarberRepo) GetAllActive() ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBarberRepo) Upsert(barber *models.Barber) error {
	r.barbers[barber.ID] = *barber
	return nil
}

func (r *fakeBarberRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return nil
}

// fakeCatalogRepo serves a fixed catalogue.
type fakeCatalogRepo struct {
	services []models.Service
}

func (r *fakeCatalogRepo) Create(service *models.Service) error {
	r.services = append(r.services, *service)
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetByBarber(barberID string, activeOnly bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.BarberID != barberID {
			continue
		}
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeCatalogRepo) Update(service *models.Service) error { return nil }

func (r *fakeCatalogRepo) Delete(id string) error { return nil }

// fakeNotifier records pushes instead of sending them.
type fakeNotifier struct {
	sent []sentPush
}

type sentPush struct {
	UserID string
	Title  string
}

func (n *fakeNotifier) SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	n.sent = append(n.sent, sentPush{UserID: userID, Title: title})
	return nil
}

// fakeScheduler records reminder scheduling calls.
type fakeScheduler struct {
	scheduled []models.Booking
}

func (s *fakeScheduler) ScheduleBookingReminder(b models.Booking) error {
	s.scheduled = append(s.scheduled, b)
	return nil
}

const (
	testBarberID   = "barber-1"
	testCustomerID = "customer-1"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
}

func testService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier, *fakeScheduler) {
	bookings := &fakeBookingRepo{}
	notifier := &fakeNotifier{}
	scheduler := &fakeScheduler{}
	svc := &DefaultBookingService{
		Bookings: bookings,
		Barbers: &fakeBarberRepo{barbers: map[string]models.Barber{
			testBarberID: {
				ID:           testBarberID,
				UserID:       testBarberID,
				ShopName:     "Fade Factory",
				IsActive:     true,
				WorkingHours: models.WorkingHours{Open: "09:00", Close: "17:00"},
			},
		}},
		Catalog: &fakeCatalogRepo{services: []models.Service{
			{ID: "svc-cut", BarberID: testBarberID, Name: "Haircut", Price: 500, Duration: 30, Active: true},
			{ID: "svc-shave", BarberID: testBarberID, Name: "Shave", Price: 300, Duration: 15, Active: true},
			{ID: "svc-old", BarberID: testBarberID, Name: "Retired", Price: 100, Duration: 10, Active: false},
		}},
		Notifier:   notifier,
		Reminders:  scheduler,
		WindowDays: 30,
		Now:        fixedNow,
	}
	return svc, bookings, notifier, scheduler
}
