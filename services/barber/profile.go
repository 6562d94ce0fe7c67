package barber

import (
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

func validateProfileRequest(req ProfileRequest) error {
	if req.ShopName == "" {
		return fmt.Errorf("shop name is required")
	}
	if req.Location.Address == "" {
		return fmt.Errorf("shop address is required")
	}
	if req.Location.Latitude < -90 || req.Location.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if req.Location.Longitude < -180 || req.Location.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if req.Contact == "" {
		return fmt.Errorf("contact is required")
	}
	return validateWorkingHours(req.Hours)
}

func validateWorkingHours(hours models.WorkingHours) error {
	open, err := time.Parse("15:04", hours.Open)
	if err != nil {
		return fmt.Errorf("opening time must be in HH:MM format")
	}
	clos, err := time.Parse("15:04", hours.Close)
	if err != nil {
		return fmt.Errorf("closing time must be in HH:MM format")
	}
	if !open.Before(clos) {
		return fmt.Errorf("opening time must be before closing time")
	}
	return nil
}

// GetProfile fetches a shop profile.
func (s *DefaultBarberService) GetProfile(barberID string) (*models.Barber, error) {
	b, err := s.Repo.GetByID(barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber profile: %w", err)
	}
	if b == nil {
		return nil, ErrProfileNotFound
	}
	return b, nil
}

// SetupProfile creates or updates the shop profile for the given user.
// The profile document shares its ID with the owning user. Updates only
// touch the submitted fields so the gallery and rating are preserved.
func (s *DefaultBarberService) SetupProfile(userID string, req ProfileRequest) (*models.Barber, error) {
	if err := validateProfileRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber profile: %w", err)
	}

	now := time.Now()
	if existing == nil {
		profile := models.Barber{
			ID:           userID,
			UserID:       userID,
			ShopName:     req.ShopName,
			Location:     req.Location,
			Contact:      req.Contact,
			WorkingHours: req.Hours,
			Images:       []string{},
			Rating:       0,
			TotalRatings: 0,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if req.IsActive != nil {
			profile.IsActive = *req.IsActive
		}
		if err := s.Repo.Upsert(&profile); err != nil {
			return nil, fmt.Errorf("failed to create barber profile: %w", err)
		}
		return &profile, nil
	}

	set := bson.M{
		"shopName":     req.ShopName,
		"location":     req.Location,
		"contact":      req.Contact,
		"workingHours": req.Hours,
		"updatedAt":    now,
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if err := s.Repo.UpdateWithDocument(userID, bson.M{"$set": set}); err != nil {
		return nil, fmt.Errorf("failed to update barber profile: %w", err)
	}
	return s.GetProfile(userID)
}
