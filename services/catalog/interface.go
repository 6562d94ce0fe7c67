package catalog

import (
	"context"
	"errors"

	catalogRepo "barberbook/database/repository/catalog"
	"barberbook/models"
	"barberbook/services/storage"
)

var (
	// ErrServiceNotFound signals a lookup for an unknown catalogue entry.
	ErrServiceNotFound = errors.New("service not found")
	// ErrNotOwner signals a write against another barber's catalogue entry.
	ErrNotOwner = errors.New("service belongs to another barber")
)

// ServiceRequest carries the writable fields of a catalogue entry.
type ServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Active      *bool   `json:"active,omitempty"`
}

type CatalogService interface {
	// ListForCustomer returns a barber's active services, optionally
	// filtered by a case-insensitive search over name and description.
	ListForCustomer(barberID, search string) ([]models.Service, error)
	// ListForBarber returns all of a barber's services including inactive ones.
	ListForBarber(barberID string) ([]models.Service, error)
	// GetService fetches a single catalogue entry.
	GetService(id string) (*models.Service, error)
	// CreateService adds a catalogue entry, uploading the image at
	// localImagePath when non-empty.
	CreateService(ctx context.Context, barberID string, req ServiceRequest, localImagePath string) (*models.Service, error)
	// UpdateService patches an entry the barber owns, replacing the image
	// when localImagePath is non-empty.
	UpdateService(ctx context.Context, barberID, serviceID string, req ServiceRequest, localImagePath string) (*models.Service, error)
	// DeleteService removes an entry the barber owns, blob first.
	DeleteService(ctx context.Context, barberID, serviceID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo       catalogRepo.CatalogRepository
	StorageSvc storage.StorageService
}
