package barber

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UploadGalleryImage adds a shop photo to the gallery.
func (s *DefaultBarberService) UploadGalleryImage(ctx context.Context, barberID, localImagePath string) (*models.Barber, error) {
	profile, err := s.GetProfile(barberID)
	if err != nil {
		return nil, err
	}
	if len(profile.Images) >= MaxGalleryImages {
		return nil, ErrGalleryFull
	}

	url, err := s.StorageSvc.UploadFile(ctx, localImagePath, "barbers/"+barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	images := append(profile.Images, url)
	update := bson.M{"$set": bson.M{"images": images, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(barberID, update); err != nil {
		return nil, fmt.Errorf("failed to save gallery image: %w", err)
	}
	profile.Images = images
	return profile, nil
}

// DeleteGalleryImage removes a shop photo. The blob is deleted before the
// reference; a failed blob delete leaves the gallery untouched, while a
// failed reference update leaves a dangling entry that a retry clears.
func (s *DefaultBarberService) DeleteGalleryImage(ctx context.Context, barberID, imageURL string) (*models.Barber, error) {
	profile, err := s.GetProfile(barberID)
	if err != nil {
		return nil, err
	}

	found := false
	images := make([]string, 0, len(profile.Images))
	for _, img := range profile.Images {
		if img == imageURL {
			found = true
			continue
		}
		images = append(images, img)
	}
	if !found {
		return nil, ErrImageNotInGallery
	}

	if err := s.StorageSvc.DeleteFile(ctx, imageURL); err != nil {
		return nil, fmt.Errorf("failed to delete gallery image: %w", err)
	}

	update := bson.M{"$set": bson.M{"images": images, "updatedAt": time.Now()}}
	if err := s.Repo.UpdateWithDocument(barberID, update); err != nil {
		return nil, fmt.Errorf("failed to update gallery: %w", err)
	}
	profile.Images = images
	return profile, nil
}
