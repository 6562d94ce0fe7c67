package barber

import (
	"context"
	"errors"

	barberRepo "barberbook/database/repository/barber"
	"barberbook/models"
	"barberbook/services/storage"
)

// Gallery limits. Uploads beyond either bound are rejected before any
// blob is written.
const (
	MaxGalleryImages    = 10
	MaxGalleryImageSize = 5 << 20 // 5MB
)

var (
	// ErrProfileNotFound signals an operation against a missing shop profile.
	ErrProfileNotFound = errors.New("barber profile not found")
	// ErrGalleryFull signals an upload that would exceed the gallery cap.
	ErrGalleryFull = errors.New("gallery is full")
	// ErrImageNotInGallery signals a delete for a URL the gallery does not hold.
	ErrImageNotInGallery = errors.New("image not found in gallery")
)

// ProfileRequest carries the writable fields of a shop profile.
type ProfileRequest struct {
	ShopName string              `json:"shopName"`
	Location models.Location     `json:"location"`
	Contact  string              `json:"contact"`
	Hours    models.WorkingHours `json:"workingHours"`
	IsActive *bool               `json:"isActive,omitempty"`
}

type BarberService interface {
	// GetProfile fetches a shop profile by its ID.
	GetProfile(barberID string) (*models.Barber, error)
	// SetupProfile creates the profile on first call and patches the
	// submitted fields afterwards. Gallery and rating state survive updates.
	SetupProfile(userID string, req ProfileRequest) (*models.Barber, error)
	// UploadGalleryImage adds the image at localImagePath to the gallery.
	UploadGalleryImage(ctx context.Context, barberID, localImagePath string) (*models.Barber, error)
	// DeleteGalleryImage removes an image, blob first.
	DeleteGalleryImage(ctx context.Context, barberID, imageURL string) (*models.Barber, error)
}

// DefaultBarberService is the production implementation.
type DefaultBarberService struct {
	Repo       barberRepo.BarberRepository
	StorageSvc storage.StorageService
}
