package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// How long before the appointment the reminder push fires.
const reminderLeadTime = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminder pushes.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking models.Booking) error
}

// AsynqReminderScheduler is the production scheduler backed by asynq.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(client *asynq.Client) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: client}
}

// ScheduleBookingReminder enqueues a reminder one hour before the appointment.
// Bookings starting within the lead time are skipped.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	if s.Client == nil {
		return fmt.Errorf("asynq client is nil, reminder task cannot be enqueued")
	}

	start, err := booking.StartTime(time.Local)
	if err != nil {
		return fmt.Errorf("failed to resolve booking start time: %w", err)
	}

	fireAt := start.Add(-reminderLeadTime)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		UserID:    booking.CustomerID,
		BookingID: booking.ID,
		Title:     "Upcoming appointment",
		Body:      fmt.Sprintf("%s at %s, see you there", booking.ServiceName, booking.Time),
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
