package directory

import (
	"fmt"
	"sort"
	"strings"

	"barberbook/models"
	"barberbook/utils"
)

// ErrBarberNotFound signals a lookup for an unknown or inactive barber.
var ErrBarberNotFound = fmt.Errorf("barber not found")

// ListBarbers fetches active barbers and applies ranking and filters.
//
// When coords is non-nil every entry carries its distance from the client
// and the listing is sorted nearest first. Without coords distances stay
// zero and the stored order is preserved. Filters apply in a fixed order:
// category, search, max distance, minimum rating. The distance filter is
// skipped entirely when the client position is unknown.
func (s *DefaultDirectoryService) ListBarbers(coords *utils.Coordinates, filter Filter) ([]models.BarberWithDistance, error) {
	barbers, err := s.Repo.GetAllActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}

	entries := make([]models.BarberWithDistance, 0, len(barbers))
	for _, b := range barbers {
		entries = append(entries, withDistance(b, coords))
	}

	if coords != nil {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Distance < entries[j].Distance
		})
	}

	entries = applyCategory(entries, filter.Category)
	entries = applySearch(entries, filter.Search)
	if coords != nil {
		entries = applyMaxDistance(entries, filter.MaxDistanceKm)
	}
	entries = applyMinRating(entries, filter.MinRating)

	return entries, nil
}

// GetBarber returns a single barber with distance resolved against coords.
func (s *DefaultDirectoryService) GetBarber(id string, coords *utils.Coordinates) (*models.BarberWithDistance, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber: %w", err)
	}
	if b == nil {
		return nil, ErrBarberNotFound
	}
	entry := withDistance(*b, coords)
	return &entry, nil
}

func withDistance(b models.Barber, coords *utils.Coordinates) models.BarberWithDistance {
	entry := models.BarberWithDistance{Barber: b}
	if coords != nil {
		entry.Distance = utils.Distance(
			coords.Latitude, coords.Longitude,
			b.Location.Latitude, b.Location.Longitude,
		)
		entry.DistanceLabel = utils.FormatDistance(entry.Distance)
	}
	return entry
}

// applyCategory is reserved for listing segmentation. Every shop currently
// belongs to the single barbershop category, so any value passes through.
func applyCategory(entries []models.BarberWithDistance, category string) []models.BarberWithDistance {
	return entries
}

func applySearch(entries []models.BarberWithDistance, search string) []models.BarberWithDistance {
	if search == "" {
		return entries
	}
	needle := strings.ToLower(search)
	filtered := entries[:0]
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.ShopName), needle) ||
			strings.Contains(strings.ToLower(e.Location.Address), needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func applyMaxDistance(entries []models.BarberWithDistance, maxKm float64) []models.BarberWithDistance {
	if maxKm <= 0 {
		return entries
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.Distance <= maxKm {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func applyMinRating(entries []models.BarberWithDistance, minRating float64) []models.BarberWithDistance {
	if minRating <= 0 {
		return entries
	}
	filtered := entries[:0]
	for _, e := range entries {
		if e.Rating >= minRating {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
