package favorite

import (
	barberRepo "barberbook/database/repository/barber"
	favoriteRepo "barberbook/database/repository/favorite"
	"barberbook/models"
)

type FavoriteService interface {
	// AddFavorite saves a barber to the customer's favorites. Saving an
	// already saved barber is a no-op.
	AddFavorite(customerID, barberID string) error
	// RemoveFavorite drops a saved barber.
	RemoveFavorite(customerID, barberID string) error
	// ListFavorites returns the customer's saved barbers, newest first.
	ListFavorites(customerID string) ([]models.Barber, error)
}

// DefaultFavoriteService is the production implementation.
type DefaultFavoriteService struct {
	Repo    favoriteRepo.FavoriteRepository
	Barbers barberRepo.BarberRepository
}
