package models

import "time"

// Booking statuses form a small state machine:
//
//	pending -> confirmed -> completed
//	pending -> cancelled
//
// completed and cancelled are terminal; terminal bookings may be deleted.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is one reserved service line. ServiceName and ServicePrice are
// snapshots taken at creation time; later edits to the Service document do
// not alter existing bookings.
type Booking struct {
	ID           string    `bson:"id" json:"id"`
	CustomerID   string    `bson:"customerId" json:"customerId"`
	BarberID     string    `bson:"barberId" json:"barberId"`
	ServiceID    string    `bson:"serviceId" json:"serviceId"`
	ServiceName  string    `bson:"serviceName" json:"serviceName"`
	ServicePrice float64   `bson:"servicePrice" json:"servicePrice"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Time         string    `bson:"time" json:"time"` // "15:04"
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCompleted
	default:
		return false
	}
}

// IsTerminalStatus reports whether a status permits no further transitions.
// Only terminal bookings may be deleted.
func IsTerminalStatus(status string) bool {
	return status == BookingStatusCompleted || status == BookingStatusCancelled
}

// StartTime resolves the booking's date and time-of-day slot into a single
// instant in the given location.
func (b Booking) StartTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
}
