package catalog

import (
	"context"
	"fmt"
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogRepo is an in-memory CatalogRepository.
type fakeCatalogRepo struct {
	services map[string]models.Service
}

func (r *fakeCatalogRepo) Create(service *models.Service) error {
	r.services[service.ID] = *service
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeCatalogRepo) GetByBarber(barberID string, activeOnly bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.BarberID != barberID {
			continue
		}
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeCatalogRepo) Update(service *models.Service) error {
	r.services[service.ID] = *service
	return nil
}

func (r *fakeCatalogRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

// fakeStorage records uploads and deletions.
type fakeStorage struct {
	uploads   int
	deleted   []string
	deleteErr error
}

func (s *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	s.uploads++
	return fmt.Sprintf("https://res.cloudinary.com/demo/image/upload/%s/img%d.jpg", destFolder, s.uploads), nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func testCatalog() (*DefaultCatalogService, *fakeCatalogRepo, *fakeStorage) {
	repo := &fakeCatalogRepo{services: map[string]models.Service{
		"svc-cut":   {ID: "svc-cut", BarberID: "barber-1", Name: "Classic Haircut", Description: "scissors and clippers", Price: 500, Duration: 30, Active: true},
		"svc-beard": {ID: "svc-beard", BarberID: "barber-1", Name: "Beard Trim", Description: "hot towel finish", Price: 300, Duration: 20, Active: true},
		"svc-old":   {ID: "svc-old", BarberID: "barber-1", Name: "Retired Cut", Price: 100, Duration: 10, Active: false},
	}}
	storage := &fakeStorage{}
	return &DefaultCatalogService{Repo: repo, StorageSvc: storage}, repo, storage
}

func TestListForCustomerOnlyActive(t *testing.T) {
	svc, _, _ := testCatalog()

	services, err := svc.ListForCustomer("barber-1", "")
	require.NoError(t, err)
	assert.Len(t, services, 2)
	for _, s := range services {
		assert.True(t, s.Active)
	}
}

func TestListForCustomerSearchIsCaseInsensitive(t *testing.T) {
	svc, _, _ := testCatalog()

	byName, err := svc.ListForCustomer("barber-1", "BEARD")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "svc-beard", byName[0].ID)

	byDescription, err := svc.ListForCustomer("barber-1", "towel")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "svc-beard", byDescription[0].ID)
}

func TestListForBarberIncludesInactive(t *testing.T) {
	svc, _, _ := testCatalog()

	services, err := svc.ListForBarber("barber-1")
	require.NoError(t, err)
	assert.Len(t, services, 3)
}

func TestCreateServiceValidation(t *testing.T) {
	svc, _, _ := testCatalog()

	cases := []ServiceRequest{
		{Name: "", Price: 100, Duration: 30},
		{Name: "Cut", Price: -1, Duration: 30},
		{Name: "Cut", Price: 100, Duration: 0},
	}
	for _, req := range cases {
		_, err := svc.CreateService(context.Background(), "barber-1", req, "")
		assert.Error(t, err, "%+v", req)
	}
}

func TestCreateServiceDefaults(t *testing.T) {
	svc, repo, _ := testCatalog()

	created, err := svc.CreateService(context.Background(), "barber-1", ServiceRequest{
		Name: "Kids Cut", Price: 250, Duration: 20,
	}, "")
	require.NoError(t, err)
	assert.True(t, created.Active, "new services default to active")
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, repo.services, created.ID)
}

func TestCreateServiceUploadsImage(t *testing.T) {
	svc, _, storage := testCatalog()

	created, err := svc.CreateService(context.Background(), "barber-1", ServiceRequest{
		Name: "Fade", Price: 600, Duration: 45,
	}, "/tmp/fade.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, storage.uploads)
	assert.NotEmpty(t, created.ImageURL)
}

func TestUpdateServiceRejectsForeignOwner(t *testing.T) {
	svc, _, _ := testCatalog()

	_, err := svc.UpdateService(context.Background(), "barber-2", "svc-cut", ServiceRequest{
		Name: "Stolen", Price: 1, Duration: 1,
	}, "")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateServiceUnknownID(t *testing.T) {
	svc, _, _ := testCatalog()

	_, err := svc.UpdateService(context.Background(), "barber-1", "missing", ServiceRequest{
		Name: "Cut", Price: 1, Duration: 1,
	}, "")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateServiceCanDeactivate(t *testing.T) {
	svc, repo, _ := testCatalog()

	inactive := false
	updated, err := svc.UpdateService(context.Background(), "barber-1", "svc-cut", ServiceRequest{
		Name: "Classic Haircut", Price: 500, Duration: 30, Active: &inactive,
	}, "")
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.False(t, repo.services["svc-cut"].Active)
}

func TestDeleteServiceRemovesBlobFirst(t *testing.T) {
	svc, repo, storage := testCatalog()
	withImage := repo.services["svc-cut"]
	withImage.ImageURL = "https://res.cloudinary.com/demo/image/upload/services/barber-1/cut.jpg"
	repo.services["svc-cut"] = withImage

	require.NoError(t, svc.DeleteService(context.Background(), "barber-1", "svc-cut"))
	assert.Equal(t, []string{withImage.ImageURL}, storage.deleted)
	assert.NotContains(t, repo.services, "svc-cut")
}

func TestDeleteServiceAbortsWhenBlobDeleteFails(t *testing.T) {
	svc, repo, storage := testCatalog()
	withImage := repo.services["svc-cut"]
	withImage.ImageURL = "https://res.cloudinary.com/demo/image/upload/services/barber-1/cut.jpg"
	repo.services["svc-cut"] = withImage
	storage.deleteErr = fmt.Errorf("cloudinary unavailable")

	err := svc.DeleteService(context.Background(), "barber-1", "svc-cut")
	assert.Error(t, err)
	assert.Contains(t, repo.services, "svc-cut", "record survives a failed blob delete")
}
