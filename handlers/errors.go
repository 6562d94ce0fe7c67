package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/barber"
	"barberbook/services/booking"
	"barberbook/services/catalog"
	"barberbook/services/directory"
	"barberbook/services/favorite"
	"barberbook/services/user"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// statusForError maps service sentinels onto HTTP status codes. Unknown
// errors fall through to 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrAccountDataNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidResetToken):
		return http.StatusBadRequest
	case errors.Is(err, directory.ErrBarberNotFound),
		errors.Is(err, booking.ErrBarberNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, barber.ErrProfileNotFound),
		errors.Is(err, barber.ErrImageNotInGallery),
		errors.Is(err, favorite.ErrBarberNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrNotAuthorized),
		errors.Is(err, catalog.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrNotDeletable):
		return http.StatusConflict
	case errors.Is(err, booking.ErrEmptyCart),
		errors.Is(err, booking.ErrInvalidSlot),
		errors.Is(err, booking.ErrDateOutOfRange),
		errors.Is(err, barber.ErrGalleryFull):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError renders a service error with the matching status code.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		utils.JSONError(c, status, "Something went wrong, please try again", err.Error())
		return
	}
	utils.JSONError(c, status, err.Error(), "")
}

// currentUserID reads the authenticated account ID set by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
