package profileRepo

import (
	"context"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// Create inserts a new profile record.
	Create(ctx context.Context, profile *models.Profile) error
	// Update modifies an existing profile record.
	Update(ctx context.Context, profile *models.Profile) error
	// UpdateSetDocument applies a partial update to a profile.
	UpdateSetDocument(ctx context.Context, id string, updateDoc bson.M) error
	// GetByID retrieves a profile by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	// GetByEmail retrieves a profile by its email. Returns (nil, nil) when no
	// profile matches.
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	// GetExpertByID retrieves a profile that is flagged as an expert.
	GetExpertByID(ctx context.Context, id string) (*models.Profile, error)
	// Delete removes a profile record by its ID.
	Delete(ctx context.Context, id string) error
	// ListExperts returns all expert profiles ordered by expert rank.
	ListExperts(ctx context.Context) ([]models.Profile, error)
	// SearchExperts returns experts whose first or last name contains the
	// query, case-insensitively.
	SearchExperts(ctx context.Context, query string, limit int64) ([]models.Profile, error)
	// GetManyByIDs retrieves the profiles whose IDs are in ids.
	GetManyByIDs(ctx context.Context, ids []string) ([]models.Profile, error)
}
