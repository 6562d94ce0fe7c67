package bookingRepo

import "barberbook/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// CreateMany inserts all bookings from one checkout. Writes are issued
	// together but carry no transactional guarantee; a mid-batch failure may
	// leave earlier records behind.
	CreateMany(bookings []models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// GetByCustomer retrieves all bookings made by a customer.
	GetByCustomer(customerID string) ([]models.Booking, error)
	// GetByBarber retrieves all bookings addressed to a barber.
	GetByBarber(barberID string) ([]models.Booking, error)
	// GetCompletedByBarber retrieves a barber's completed bookings.
	GetCompletedByBarber(barberID string) ([]models.Booking, error)
	// UpdateStatus sets the status of a single booking document.
	UpdateStatus(id, status string) error
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
