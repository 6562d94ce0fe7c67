package user

import "errors"

var (
	// ErrInvalidCredentials signals a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken signals that an account already exists for the email.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrAccountDataNotFound signals a valid session whose account record is gone.
	ErrAccountDataNotFound = errors.New("account data not found")
	// ErrInvalidResetToken signals a missing, expired, or mismatched reset token.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
