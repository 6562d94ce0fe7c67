package models

import "time"

// User roles. Role is fixed at signup and determines which views and
// capabilities apply.
const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

// User represents a platform account, either a customer or a barber.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// UserUpdateRequest carries the mutable profile fields. Empty fields are
// left untouched.
type UserUpdateRequest struct {
	ID          string `json:"-"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	FCMToken    string `json:"fcmToken,omitempty"`
}

// IsValidRole reports whether role is one of the two supported account roles.
func IsValidRole(role string) bool {
	return role == RoleCustomer || role == RoleBarber
}
