package favorite

import (
	"errors"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeFavoriteRepo keeps one entry per (customer, barber) pair, like the
// unique index on the real collection.
type fakeFavoriteRepo struct {
	favorites []models.Favorite
}

func (r *fakeFavoriteRepo) Create(favorite *models.Favorite) error {
	for _, f := range r.favorites {
		if f.CustomerID == favorite.CustomerID && f.BarberID == favorite.BarberID {
			return nil
		}
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *fakeFavoriteRepo) Delete(customerID, barberID string) error {
	for i, f := range r.favorites {
		if f.CustomerID == customerID && f.BarberID == barberID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return errors.New("favorite not found")
}

func (r *fakeFavoriteRepo) GetByCustomer(customerID string) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeBarberRepo struct {
	barbers map[string]models.Barber
}

func (r *fakeBarberRepo) GetByID(id string) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBarberRepo) GetAllActive() ([]models.Barber, error) { return nil, nil }

func (r *fakeBarberRepo) Upsert(barber *models.Barber) error { return nil }

func (r *fakeBarberRepo) UpdateWithDocument(id string, updateDoc bson.M) error { return nil }

func testFavorites() (*DefaultFavoriteService, *fakeFavoriteRepo) {
	repo := &fakeFavoriteRepo{}
	svc := &DefaultFavoriteService{
		Repo: repo,
		Barbers: &fakeBarberRepo{barbers: map[string]models.Barber{
			"barber-1": {ID: "barber-1", ShopName: "Fade Factory", IsActive: true},
			"barber-2": {ID: "barber-2", ShopName: "CBD Barbers", IsActive: true},
		}},
	}
	return svc, repo
}

func TestAddFavorite(t *testing.T) {
	svc, repo := testFavorites()

	require.NoError(t, svc.AddFavorite("customer-1", "barber-1"))
	require.Len(t, repo.favorites, 1)
	assert.NotEmpty(t, repo.favorites[0].ID)
}

func TestAddFavoriteTwiceIsNoOp(t *testing.T) {
	svc, repo := testFavorites()

	require.NoError(t, svc.AddFavorite("customer-1", "barber-1"))
	require.NoError(t, svc.AddFavorite("customer-1", "barber-1"))
	assert.Len(t, repo.favorites, 1)
}

func TestAddFavoriteUnknownBarber(t *testing.T) {
	svc, repo := testFavorites()

	err := svc.AddFavorite("customer-1", "ghost")
	assert.ErrorIs(t, err, ErrBarberNotFound)
	assert.Empty(t, repo.favorites)
}

func TestRemoveFavorite(t *testing.T) {
	svc, repo := testFavorites()
	require.NoError(t, svc.AddFavorite("customer-1", "barber-1"))

	require.NoError(t, svc.RemoveFavorite("customer-1", "barber-1"))
	assert.Empty(t, repo.favorites)

	assert.Error(t, svc.RemoveFavorite("customer-1", "barber-1"))
}

func TestListFavoritesNewestFirst(t *testing.T) {
	svc, repo := testFavorites()
	repo.favorites = []models.Favorite{
		{ID: "f1", CustomerID: "customer-1", BarberID: "barber-1", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "f2", CustomerID: "customer-1", BarberID: "barber-2", CreatedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)},
	}

	barbers, err := svc.ListFavorites("customer-1")
	require.NoError(t, err)
	require.Len(t, barbers, 2)
	assert.Equal(t, "barber-2", barbers[0].ID)
	assert.Equal(t, "barber-1", barbers[1].ID)
}

func TestListFavoritesSkipsRemovedProfiles(t *testing.T) {
	svc, repo := testFavorites()
	repo.favorites = []models.Favorite{
		{ID: "f1", CustomerID: "customer-1", BarberID: "barber-1", CreatedAt: time.Now()},
		{ID: "f2", CustomerID: "customer-1", BarberID: "gone", CreatedAt: time.Now()},
	}

	barbers, err := svc.ListFavorites("customer-1")
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	assert.Equal(t, "barber-1", barbers[0].ID)
}
