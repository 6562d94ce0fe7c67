package booking

import (
	"fmt"
	"sort"

	"barberbook/models"
)

// Revenue periods.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// Revenue summarizes a barber's completed bookings. The week and month
// periods are rolling windows of 7 and 30 days ending now.
func (s *DefaultBookingService) Revenue(barberID, period string) (*RevenueStats, error) {
	if period == "" {
		period = PeriodAll
	}
	switch period {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
	default:
		return nil, fmt.Errorf("unknown revenue period %q", period)
	}

	completed, err := s.Bookings.GetCompletedByBarber(barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed bookings: %w", err)
	}

	stats := &RevenueStats{Period: period}
	byService := make(map[string]*ServiceBreakdown)

	for _, b := range completed {
		if !s.inPeriod(b, period) {
			continue
		}
		revenue := b.ServicePrice * float64(b.Quantity)
		stats.TotalRevenue += revenue
		stats.TotalCount += b.Quantity

		entry, ok := byService[b.ServiceName]
		if !ok {
			entry = &ServiceBreakdown{ServiceName: b.ServiceName}
			byService[b.ServiceName] = entry
		}
		entry.Count += b.Quantity
		entry.Revenue += revenue
	}

	if stats.TotalCount > 0 {
		stats.AverageRevenue = stats.TotalRevenue / float64(stats.TotalCount)
	}

	stats.Services = make([]ServiceBreakdown, 0, len(byService))
	for _, entry := range byService {
		stats.Services = append(stats.Services, *entry)
	}
	sort.Slice(stats.Services, func(i, j int) bool {
		if stats.Services[i].Revenue != stats.Services[j].Revenue {
			return stats.Services[i].Revenue > stats.Services[j].Revenue
		}
		return stats.Services[i].ServiceName < stats.Services[j].ServiceName
	})

	return stats, nil
}

func (s *DefaultBookingService) inPeriod(b models.Booking, period string) bool {
	if period == PeriodAll {
		return true
	}
	now := s.now()
	start, err := b.StartTime(now.Location())
	if err != nil {
		return false
	}

	switch period {
	case PeriodToday:
		return start.Year() == now.Year() && start.YearDay() == now.YearDay()
	case PeriodWeek:
		return start.After(now.AddDate(0, 0, -7))
	case PeriodMonth:
		return start.After(now.AddDate(0, 0, -30))
	}
	return false
}
