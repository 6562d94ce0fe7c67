package barberRepo

import (
	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BarberRepository defines methods for barber profile data access.
type BarberRepository interface {
	// GetByID retrieves a barber profile by its ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Barber, error)
	// GetAllActive retrieves all barbers flagged active, in stored order.
	GetAllActive() ([]models.Barber, error)
	// Upsert creates the profile if absent, otherwise replaces its mutable fields.
	Upsert(barber *models.Barber) error
	// UpdateWithDocument patches a barber document with the given update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
}
