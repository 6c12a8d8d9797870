package expert

import (
	"context"
	"fmt"

	"expertly/models"

	"github.com/google/uuid"
)

// validateService checks the fields an expert controls on a service.
func validateService(service *models.ExpertService) error {
	if service.Title == "" {
		return fmt.Errorf("service title is required")
	}
	if !models.ValidServiceType(service.ServiceType) {
		return fmt.Errorf("unknown service type %q", service.ServiceType)
	}
	if service.Price < 0 {
		return fmt.Errorf("service price must not be negative")
	}
	if service.AvailabilitySlots < 0 {
		return fmt.Errorf("availability slots must not be negative")
	}
	return nil
}

// CreateService publishes a new service for an expert. New services go live
// immediately.
func (s *DefaultExpertService) CreateService(ctx context.Context, service *models.ExpertService) (*models.ExpertService, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}
	service.ID = uuid.New().String()
	service.IsActive = true
	if err := s.Services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return service, nil
}

// UpdateService modifies one of the expert's services.
func (s *DefaultExpertService) UpdateService(ctx context.Context, service *models.ExpertService) (*models.ExpertService, error) {
	if err := validateService(service); err != nil {
		return nil, err
	}
	if err := s.Services.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

// ListServices returns all of an expert's services, newest first.
func (s *DefaultExpertService) ListServices(ctx context.Context, expertID string) ([]models.ExpertService, error) {
	services, err := s.Services.ListByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// DeleteService removes one of the expert's services.
func (s *DefaultExpertService) DeleteService(ctx context.Context, serviceID, expertID string) error {
	if err := s.Services.Delete(ctx, serviceID, expertID); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
