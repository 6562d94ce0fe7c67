package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barberbook/models"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateServiceRequest(req ServiceRequest) error {
	if req.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if req.Duration <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes")
	}
	return nil
}

// ListForCustomer returns active services, optionally filtered by search.
func (s *DefaultCatalogService) ListForCustomer(barberID, search string) ([]models.Service, error) {
	services, err := s.Repo.GetByBarber(barberID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	if search == "" {
		return services, nil
	}

	needle := strings.ToLower(search)
	filtered := services[:0]
	for _, svc := range services {
		if strings.Contains(strings.ToLower(svc.Name), needle) ||
			strings.Contains(strings.ToLower(svc.Description), needle) {
			filtered = append(filtered, svc)
		}
	}
	return filtered, nil
}

// ListForBarber returns all services for the barber's own management view.
func (s *DefaultCatalogService) ListForBarber(barberID string) ([]models.Service, error) {
	services, err := s.Repo.GetByBarber(barberID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetService fetches one catalogue entry.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// CreateService adds a catalogue entry for the barber.
func (s *DefaultCatalogService) CreateService(ctx context.Context, barberID string, req ServiceRequest, localImagePath string) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}

	svc := models.Service{
		ID:          uuid.New().String(),
		BarberID:    barberID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Active:      true,
		CreatedAt:   time.Now(),
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if localImagePath != "" {
		url, err := s.StorageSvc.UploadFile(ctx, localImagePath, "services/"+barberID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload service image: %w", err)
		}
		svc.ImageURL = url
	}

	if err := s.Repo.Create(&svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// UpdateService patches an entry owned by the barber.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, barberID, serviceID string, req ServiceRequest, localImagePath string) (*models.Service, error) {
	if err := validateServiceRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.ownedService(barberID, serviceID)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Duration = req.Duration
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if localImagePath != "" {
		url, err := s.StorageSvc.UploadFile(ctx, localImagePath, "services/"+barberID)
		if err != nil {
			return nil, fmt.Errorf("failed to upload service image: %w", err)
		}
		if existing.ImageURL != "" {
			if err := s.StorageSvc.DeleteFile(ctx, existing.ImageURL); err != nil {
				utils.GetLogger().Warn("Failed to delete replaced service image",
					zap.String("serviceId", serviceID), zap.Error(err))
			}
		}
		existing.ImageURL = url
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return existing, nil
}

// DeleteService removes an entry owned by the barber. The image blob is
// deleted before the record so a failed blob delete aborts the removal.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, barberID, serviceID string) error {
	existing, err := s.ownedService(barberID, serviceID)
	if err != nil {
		return err
	}

	if existing.ImageURL != "" {
		if err := s.StorageSvc.DeleteFile(ctx, existing.ImageURL); err != nil {
			return fmt.Errorf("failed to delete service image: %w", err)
		}
	}
	if err := s.Repo.Delete(serviceID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *DefaultCatalogService) ownedService(barberID, serviceID string) (*models.Service, error) {
	existing, err := s.Repo.GetByID(serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if existing == nil {
		return nil, ErrServiceNotFound
	}
	if existing.BarberID != barberID {
		return nil, ErrNotOwner
	}
	return existing, nil
}
