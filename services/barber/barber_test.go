package barber

import (
	"context"
	"fmt"
	"testing"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeBarberRepo applies $set patches in memory so gallery updates are
// observable.
type fakeBarberRepo struct {
	profiles map[string]models.Barber
}

func (r *fakeBarberRepo) GetByID(id string) (*models.Barber, error) {
	b, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBarberRepo) GetAllActive() ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.profiles {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBarberRepo) Upsert(barber *models.Barber) error {
	r.profiles[barber.ID] = *barber
	return nil
}

func (r *fakeBarberRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	b, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("barber %s not found", id)
	}
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if images, ok := set["images"].([]string); ok {
			b.Images = images
		}
		if shopName, ok := set["shopName"].(string); ok {
			b.ShopName = shopName
		}
		if contact, ok := set["contact"].(string); ok {
			b.Contact = contact
		}
		if location, ok := set["location"].(models.Location); ok {
			b.Location = location
		}
		if hours, ok := set["workingHours"].(models.WorkingHours); ok {
			b.WorkingHours = hours
		}
		if active, ok := set["isActive"].(bool); ok {
			b.IsActive = active
		}
	}
	r.profiles[id] = b
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

func validProfile() ProfileRequest {
	return ProfileRequest{
		ShopName: "Fade Factory",
		Location: models.Location{Address: "Moi Avenue", Latitude: -1.2864, Longitude: 36.8172},
		Contact:  "+254700000000",
		Hours:    models.WorkingHours{Open: "09:00", Close: "17:00"},
	}
}

func testBarber() (*DefaultBarberService, *fakeBarberRepo, *fakeStorage) {
	repo := &fakeBarberRepo{profiles: map[string]models.Barber{}}
	storage := &fakeStorage{}
	return &DefaultBarberService{Repo: repo, StorageSvc: storage}, repo, storage
}

func TestSetupProfileCreates(t *testing.T) {
	svc, repo, _ := testBarber()

	profile, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	assert.Equal(t, "barber-1", profile.ID, "profile shares the owner's ID")
	assert.Equal(t, "barber-1", profile.UserID)
	assert.True(t, profile.IsActive)
	assert.Empty(t, profile.Images)
	assert.Zero(t, profile.Rating)
	assert.Contains(t, repo.profiles, "barber-1")
}

func TestSetupProfileUpdatePreservesGalleryAndRating(t *testing.T) {
	svc, repo, _ := testBarber()

	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	// Simulate accumulated state.
	b := repo.profiles["barber-1"]
	b.Images = []string{"https://res.cloudinary.com/demo/image/upload/barbers/barber-1/img1.jpg"}
	b.Rating = 4.7
	b.TotalRatings = 12
	repo.profiles["barber-1"] = b

	req := validProfile()
	req.ShopName = "Fade Factory Deluxe"
	updated, err := svc.SetupProfile("barber-1", req)
	require.NoError(t, err)

	assert.Equal(t, "Fade Factory Deluxe", updated.ShopName)
	assert.Len(t, updated.Images, 1)
	assert.Equal(t, 4.7, updated.Rating)
	assert.Equal(t, 12, updated.TotalRatings)
}

func TestSetupProfileValidation(t *testing.T) {
	svc, _, _ := testBarber()

	mutate := []func(*ProfileRequest){
		func(r *ProfileRequest) { r.ShopName = "" },
		func(r *ProfileRequest) { r.Location.Address = "" },
		func(r *ProfileRequest) { r.Location.Latitude = 95 },
		func(r *ProfileRequest) { r.Location.Longitude = -200 },
		func(r *ProfileRequest) { r.Contact = "" },
		func(r *ProfileRequest) { r.Hours.Open = "9am" },
		func(r *ProfileRequest) { r.Hours = models.WorkingHours{Open: "17:00", Close: "09:00"} },
	}
	for i, m := range mutate {
		req := validProfile()
		m(&req)
		_, err := svc.SetupProfile("barber-1", req)
		assert.Error(t, err, "case %d", i)
	}
}

func TestGetProfileMissing(t *testing.T) {
	svc, _, _ := testBarber()

	_, err := svc.GetProfile("nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUploadGalleryImage(t *testing.T) {
	svc, repo, storage := testBarber()
	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	profile, err := svc.UploadGalleryImage(context.Background(), "barber-1", "/tmp/shop.jpg")
	require.NoError(t, err)
	assert.Equal(t, 1, storage.uploads)
	require.Len(t, profile.Images, 1)
	assert.Len(t, repo.profiles["barber-1"].Images, 1)
}

func TestUploadGalleryImageEnforcesCap(t *testing.T) {
	svc, repo, storage := testBarber()
	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	b := repo.profiles["barber-1"]
	for i := 0; i < MaxGalleryImages; i++ {
		b.Images = append(b.Images, fmt.Sprintf("https://example/img%d.jpg", i))
	}
	repo.profiles["barber-1"] = b

	_, err = svc.UploadGalleryImage(context.Background(), "barber-1", "/tmp/one-too-many.jpg")
	assert.ErrorIs(t, err, ErrGalleryFull)
	assert.Zero(t, storage.uploads, "no blob is written once the cap is hit")
}

func TestDeleteGalleryImageBlobFirst(t *testing.T) {
	svc, repo, storage := testBarber()
	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	profile, err := svc.UploadGalleryImage(context.Background(), "barber-1", "/tmp/shop.jpg")
	require.NoError(t, err)
	imageURL := profile.Images[0]

	updated, err := svc.DeleteGalleryImage(context.Background(), "barber-1", imageURL)
	require.NoError(t, err)
	assert.Empty(t, updated.Images)
	assert.Equal(t, []string{imageURL}, storage.deleted)
	assert.Empty(t, repo.profiles["barber-1"].Images)
}

func TestDeleteGalleryImageFailedBlobKeepsReference(t *testing.T) {
	svc, repo, storage := testBarber()
	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	profile, err := svc.UploadGalleryImage(context.Background(), "barber-1", "/tmp/shop.jpg")
	require.NoError(t, err)
	storage.deleteErr = fmt.Errorf("cloudinary unavailable")

	_, err = svc.DeleteGalleryImage(context.Background(), "barber-1", profile.Images[0])
	assert.Error(t, err)
	assert.Len(t, repo.profiles["barber-1"].Images, 1, "reference survives a failed blob delete")
}

func TestDeleteGalleryImageUnknownURL(t *testing.T) {
	svc, _, _ := testBarber()
	_, err := svc.SetupProfile("barber-1", validProfile())
	require.NoError(t, err)

	_, err = svc.DeleteGalleryImage(context.Background(), "barber-1", "https://example/ghost.jpg")
	assert.ErrorIs(t, err, ErrImageNotInGallery)
}
