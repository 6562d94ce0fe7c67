package booking

import "errors"

var (
	// ErrBarberNotFound signals a checkout or slot request for an unknown barber.
	ErrBarberNotFound = errors.New("barber not found")
	// ErrServiceNotFound signals a cart line whose service no longer exists.
	ErrServiceNotFound = errors.New("service not found")
	// ErrEmptyCart signals a checkout with no selected services.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidSlot signals a time outside the barber's generated slots.
	ErrInvalidSlot = errors.New("requested time is not an available slot")
	// ErrDateOutOfRange signals a date outside the booking window.
	ErrDateOutOfRange = errors.New("date is outside the booking window")
	// ErrBookingNotFound signals an operation against a missing booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrNotAuthorized signals an actor touching someone else's booking.
	ErrNotAuthorized = errors.New("booking belongs to another account")
	// ErrInvalidTransition signals a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotDeletable signals a delete on a booking still in flight.
	ErrNotDeletable = errors.New("only completed or cancelled bookings can be deleted")
)
