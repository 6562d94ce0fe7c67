package directory

import (
	"testing"

	"barberbook/models"
	"barberbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeBarberRepo returns a fixed listing in stored order.
type fakeBarberRepo struct {
	barbers []models.Barber
}

func (r *fakeBarberRepo) GetByID(id string) (*models.Barber, error) {
	for i := range r.barbers {
		if r.barbers[i].ID == id {
			b := r.barbers[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBarberRepo) GetAllActive() ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBarberRepo) Upsert(barber *models.Barber) error { return nil }

func (r *fakeBarberRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }

func shop(id, name, address string, lat, lng, rating float64) models.Barber {
	return models.Barber{
		ID:       id,
		ShopName: name,
		Location: models.Location{Address: address, Latitude: lat, Longitude: lng},
		Rating:   rating,
		IsActive: true,
	}
}

// Client position in the Nairobi CBD.
var clientCoords = &utils.Coordinates{Latitude: -1.2864, Longitude: 36.8172}

func testDirectory() *DefaultDirectoryService {
	return &DefaultDirectoryService{Repo: &fakeBarberRepo{barbers: []models.Barber{
		shop("far", "Uptown Cuts", "Karen Road", -1.3524, 36.7070, 4.9),
		shop("near", "CBD Barbers", "Moi Avenue", -1.2850, 36.8200, 3.5),
		shop("mid", "Westlands Fades", "Waiyaki Way", -1.2673, 36.8111, 4.5),
		{ID: "hidden", ShopName: "Closed Shop", IsActive: false},
	}}}
}

func TestListBarbersSortsByDistance(t *testing.T) {
	svc := testDirectory()

	entries, err := svc.ListBarbers(clientCoords, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3, "inactive shops never appear")

	assert.Equal(t, "near", entries[0].ID)
	assert.Equal(t, "mid", entries[1].ID)
	assert.Equal(t, "far", entries[2].ID)

	assert.Greater(t, entries[2].Distance, entries[0].Distance)
	assert.NotEmpty(t, entries[0].DistanceLabel)
}

func TestListBarbersWithoutCoordinates(t *testing.T) {
	svc := testDirectory()

	entries, err := svc.ListBarbers(nil, Filter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Stored order is preserved and no distances are attached.
	assert.Equal(t, "far", entries[0].ID)
	for _, e := range entries {
		assert.Zero(t, e.Distance)
		assert.Empty(t, e.DistanceLabel)
	}
}

func TestListBarbersSearchMatchesNameAndAddress(t *testing.T) {
	svc := testDirectory()

	byName, err := svc.ListBarbers(clientCoords, Filter{Search: "fades"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "mid", byName[0].ID)

	byAddress, err := svc.ListBarbers(clientCoords, Filter{Search: "MOI"})
	require.NoError(t, err)
	require.Len(t, byAddress, 1)
	assert.Equal(t, "near", byAddress[0].ID)
}

func TestListBarbersMaxDistanceRequiresCoordinates(t *testing.T) {
	svc := testDirectory()

	near, err := svc.ListBarbers(clientCoords, Filter{MaxDistanceKm: 5})
	require.NoError(t, err)
	assert.Len(t, near, 2, "the Karen shop is beyond 5km")

	// Without a client position the distance filter is skipped.
	all, err := svc.ListBarbers(nil, Filter{MaxDistanceKm: 5})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListBarbersMinRatingIsInclusive(t *testing.T) {
	svc := testDirectory()

	rated, err := svc.ListBarbers(clientCoords, Filter{MinRating: 4.5})
	require.NoError(t, err)
	require.Len(t, rated, 2)
	for _, e := range rated {
		assert.GreaterOrEqual(t, e.Rating, 4.5)
	}
}

func TestListBarbersCategoryPassesThrough(t *testing.T) {
	svc := testDirectory()

	entries, err := svc.ListBarbers(clientCoords, Filter{Category: "barbershop"})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestListBarbersCombinedFilters(t *testing.T) {
	svc := testDirectory()

	entries, err := svc.ListBarbers(clientCoords, Filter{MaxDistanceKm: 5, MinRating: 4.0})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mid", entries[0].ID)
}

func TestGetBarber(t *testing.T) {
	svc := testDirectory()

	entry, err := svc.GetBarber("near", clientCoords)
	require.NoError(t, err)
	assert.Equal(t, "CBD Barbers", entry.ShopName)
	assert.NotZero(t, entry.Distance)

	_, err = svc.GetBarber("missing", clientCoords)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
