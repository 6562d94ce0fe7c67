package catalogRepo

import "barberbook/models"

// CatalogRepository defines methods for service catalogue data access.
type CatalogRepository interface {
	// Create inserts a new service record.
	Create(service *models.Service) error
	// GetByID retrieves a service by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Service, error)
	// GetByBarber retrieves a barber's services. With activeOnly set, inactive
	// services are filtered out at the query level.
	GetByBarber(barberID string, activeOnly bool) ([]models.Service, error)
	// Update replaces the mutable fields of an existing service record.
	Update(service *models.Service) error
	// Delete removes a service record by its ID.
	Delete(id string) error
}
