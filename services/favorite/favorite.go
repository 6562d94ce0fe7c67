package favorite

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBarberNotFound signals favoriting a barber that does not exist.
var ErrBarberNotFound = errors.New("barber not found")

// AddFavorite saves a barber to the customer's favorites.
func (s *DefaultFavoriteService) AddFavorite(customerID, barberID string) error {
	barber, err := s.Barbers.GetByID(barberID)
	if err != nil {
		return fmt.Errorf("failed to fetch barber: %w", err)
	}
	if barber == nil {
		return ErrBarberNotFound
	}

	fav := models.Favorite{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		BarberID:   barberID,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(&fav); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// RemoveFavorite drops a saved barber.
func (s *DefaultFavoriteService) RemoveFavorite(customerID, barberID string) error {
	if err := s.Repo.Delete(customerID, barberID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites resolves the customer's saved barbers, newest save first.
// Favorites pointing at removed profiles are skipped.
func (s *DefaultFavoriteService) ListFavorites(customerID string) ([]models.Barber, error) {
	favorites, err := s.Repo.GetByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})

	barbers := make([]models.Barber, 0, len(favorites))
	for _, fav := range favorites {
		barber, err := s.Barbers.GetByID(fav.BarberID)
		if err != nil {
			utils.GetLogger().Warn("Failed to resolve favorite barber",
				zap.String("barberId", fav.BarberID), zap.Error(err))
			continue
		}
		if barber == nil {
			continue
		}
		barbers = append(barbers, *barber)
	}
	return barbers, nil
}
