package models

import "time"

// Service is a single offering in a barber's catalogue. Inactive services
// stay addressable by the owner but are hidden from customers.
type Service struct {
	ID          string    `bson:"id" json:"id"`
	BarberID    string    `bson:"barberId" json:"barberId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Duration    int       `bson:"duration" json:"duration"` // minutes
	ImageURL    string    `bson:"imageUrl" json:"imageUrl,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
