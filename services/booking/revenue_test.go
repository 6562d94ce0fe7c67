package booking

import (
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCompleted(repo *fakeBookingRepo, id, name string, price float64, qty int, date string) {
	repo.bookings = append(repo.bookings, models.Booking{
		ID:           id,
		CustomerID:   testCustomerID,
		BarberID:     testBarberID,
		ServiceName:  name,
		ServicePrice: price,
		Quantity:     qty,
		Date:         date,
		Time:         "10:00",
		Status:       models.BookingStatusCompleted,
	})
}

func TestRevenueAllTime(t *testing.T) {
	svc, repo, _, _ := testService()
	// Now is 2026-08-31 10:00 UTC.
	seedCompleted(repo, "r1", "Haircut", 500, 2, "2026-08-31")
	seedCompleted(repo, "r2", "Shave", 300, 1, "2026-08-27")
	seedCompleted(repo, "r3", "Haircut", 500, 1, "2026-07-01")

	stats, err := svc.Revenue(testBarberID, PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, 1800.0, stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, 450.0, stats.AverageRevenue)

	require.Len(t, stats.Services, 2)
	assert.Equal(t, "Haircut", stats.Services[0].ServiceName)
	assert.Equal(t, 1500.0, stats.Services[0].Revenue)
	assert.Equal(t, 3, stats.Services[0].Count)
	assert.Equal(t, "Shave", stats.Services[1].ServiceName)
}

func TestRevenueToday(t *testing.T) {
	svc, repo, _, _ := testService()
	seedCompleted(repo, "r1", "Haircut", 500, 1, "2026-08-31")
	seedCompleted(repo, "r2", "Shave", 300, 1, "2026-08-30")

	stats, err := svc.Revenue(testBarberID, PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.TotalCount)
}

func TestRevenueRollingWindows(t *testing.T) {
	svc, repo, _, _ := testService()
	seedCompleted(repo, "r1", "Haircut", 500, 1, "2026-08-30") // within 7 days
	seedCompleted(repo, "r2", "Shave", 300, 1, "2026-08-10")   // within 30 days
	seedCompleted(repo, "r3", "Trim", 200, 1, "2026-06-01")    // older

	week, err := svc.Revenue(testBarberID, PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, 500.0, week.TotalRevenue)

	month, err := svc.Revenue(testBarberID, PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 800.0, month.TotalRevenue)
}

func TestRevenueIgnoresNonCompleted(t *testing.T) {
	svc, repo, _, _ := testService()
	seedCompleted(repo, "r1", "Haircut", 500, 1, "2026-08-31")
	seedBooking(repo, "p1", models.BookingStatusPending, "2026-08-31", "11:00")
	seedBooking(repo, "c1", models.BookingStatusConfirmed, "2026-08-31", "12:00")

	stats, err := svc.Revenue(testBarberID, PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, 500.0, stats.TotalRevenue)
	assert.Equal(t, 1, stats.TotalCount)
}

func TestRevenueDefaultsToAll(t *testing.T) {
	svc, repo, _, _ := testService()
	seedCompleted(repo, "r1", "Haircut", 500, 1, "2026-01-01")

	stats, err := svc.Revenue(testBarberID, "")
	require.NoError(t, err)
	assert.Equal(t, PeriodAll, stats.Period)
	assert.Equal(t, 500.0, stats.TotalRevenue)
}

func TestRevenueRejectsUnknownPeriod(t *testing.T) {
	svc, _, _, _ := testService()
	_, err := svc.Revenue(testBarberID, "quarter")
	assert.Error(t, err)
}
