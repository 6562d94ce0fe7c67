package directory

import (
	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/utils"
)

// Filter narrows a directory listing. Zero values leave the listing untouched.
type Filter struct {
	Category      string  `form:"category"`
	Search        string  `form:"search"`
	MaxDistanceKm float64 `form:"maxDistance"`
	MinRating     float64 `form:"minRating"`
}

type DirectoryService interface {
	// ListBarbers returns active barbers ranked by distance when coords is
	// non-nil, filtered per the given filter.
	ListBarbers(coords *utils.Coordinates, filter Filter) ([]models.BarberWithDistance, error)
	// GetBarber returns one barber with its distance resolved against coords.
	GetBarber(id string, coords *utils.Coordinates) (*models.BarberWithDistance, error)
}

// DefaultDirectoryService is the production implementation.
type DefaultDirectoryService struct {
	Repo barberRepo.BarberRepository
}
