package user

import (
	userRepo "barberbook/database/repository/user"
	"barberbook/models"
)

type UserService interface {
	// Registration and authentication
	RegisterUser(user models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	SignOutUser(userID string) error

	// Password reset
	RequestPasswordReset(email string) error
	ConfirmPasswordReset(email, resetToken, newPassword string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	UpdateUser(req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
