package models

import "time"

// Favorite marks a barber a customer wants quick access to.
type Favorite struct {
	ID         string    `bson:"id" json:"id"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	BarberID   string    `bson:"barberId" json:"barberId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
