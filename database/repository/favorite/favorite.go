package favoriteRepo

import "barberbook/models"

// FavoriteRepository defines methods for favorite data access.
type FavoriteRepository interface {
	// Create inserts a favorite; adding the same barber twice is a no-op upsert.
	Create(favorite *models.Favorite) error
	// Delete removes a customer's favorite for the given barber.
	Delete(customerID, barberID string) error
	// GetByCustomer retrieves all favorites saved by a customer.
	GetByCustomer(customerID string) ([]models.Favorite, error)
}
