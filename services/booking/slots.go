package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// hourOf extracts the hour component from an "HH:MM" string.
func hourOf(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q is not in HH:MM format", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("time %q has an invalid hour", value)
	}
	return hour, nil
}

// GenerateTimeSlots expands working hours into half-hour slots. Slots start
// on the opening hour and stop before the closing hour, so a 09:00-17:00
// day yields 09:00 through 16:30. Minute components of the configured hours
// are ignored.
func GenerateTimeSlots(open, close string) ([]string, error) {
	openHour, err := hourOf(open)
	if err != nil {
		return nil, err
	}
	closeHour, err := hourOf(close)
	if err != nil {
		return nil, err
	}
	if openHour >= closeHour {
		return nil, fmt.Errorf("opening hour %d is not before closing hour %d", openHour, closeHour)
	}

	slots := make([]string, 0, (closeHour-openHour)*2)
	for hour := openHour; hour < closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		slots = append(slots, fmt.Sprintf("%02d:30", hour))
	}
	return slots, nil
}

// BucketSlots groups slots into morning, afternoon, and evening sections.
// Empty sections are omitted.
func BucketSlots(slots []string) []SlotBucket {
	var morning, afternoon, evening []string
	for _, slot := range slots {
		hour, err := hourOf(slot)
		if err != nil {
			continue
		}
		switch {
		case hour < 12:
			morning = append(morning, slot)
		case hour < 17:
			afternoon = append(afternoon, slot)
		default:
			evening = append(evening, slot)
		}
	}

	var buckets []SlotBucket
	if len(morning) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Morning", Slots: morning})
	}
	if len(afternoon) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Afternoon", Slots: afternoon})
	}
	if len(evening) > 0 {
		buckets = append(buckets, SlotBucket{Label: "Evening", Slots: evening})
	}
	return buckets
}

// bookableDates lists every date from today through the end of the window.
func bookableDates(now time.Time, windowDays int) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]string, 0, windowDays+1)
	for i := 0; i <= windowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// validateBookingDate checks that date falls inside [today, today+windowDays].
func validateBookingDate(date string, now time.Time, windowDays int) error {
	parsed, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return fmt.Errorf("date %q is not in YYYY-MM-DD format", date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) || parsed.After(today.AddDate(0, 0, windowDays)) {
		return ErrDateOutOfRange
	}
	return nil
}

// AvailableSlots returns the bookable dates and bucketed time slots for a
// barber, derived from its working hours.
func (s *DefaultBookingService) AvailableSlots(barberID string) ([]string, []SlotBucket, error) {
	barber, err := s.Barbers.GetByID(barberID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch barber: %w", err)
	}
	if barber == nil {
		return nil, nil, ErrBarberNotFound
	}

	slots, err := GenerateTimeSlots(barber.WorkingHours.Open, barber.WorkingHours.Close)
	if err != nil {
		return nil, nil, fmt.Errorf("barber %s has invalid working hours: %w", barberID, err)
	}
	return bookableDates(s.now(), s.windowDays()), BucketSlots(slots), nil
}
