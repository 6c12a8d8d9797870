package serviceRepo

import (
	"context"

	"expertly/models"
)

// ServiceRepository defines methods for expert service data access.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(ctx context.Context, service *models.ExpertService) error
	// Update modifies an existing service record.
	Update(ctx context.Context, service *models.ExpertService) error
	// GetByID retrieves a service by its unique ID.
	GetByID(ctx context.Context, id string) (*models.ExpertService, error)
	// ListByExpert returns an expert's services, newest first.
	ListByExpert(ctx context.Context, expertID string) ([]models.ExpertService, error)
	// ListActiveByExpert returns an expert's active services ordered by price.
	ListActiveByExpert(ctx context.Context, expertID string) ([]models.ExpertService, error)
	// Delete removes a service record by its ID, scoped to the owning expert.
	Delete(ctx context.Context, id, expertID string) error
}
