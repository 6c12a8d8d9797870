package expert

import (
	"context"

	categoryRepo "expertly/database/repository/category"
	profileRepo "expertly/database/repository/profile"
	serviceRepo "expertly/database/repository/service"
	suggestionRepo "expertly/database/repository/suggestion"
	videoRepo "expertly/database/repository/video"

	"expertly/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-redis/redis/v8"
)

// ExpertProfileView is the full profile page payload: the expert with their
// active services and intro videos.
type ExpertProfileView struct {
	Profile    models.Profile         `json:"profile"`
	Services   []models.ExpertService `json:"services"`
	Videos     []models.ExpertVideo   `json:"videos"`
	Categories []models.Category      `json:"categories"`
}

// ExpertService defines business logic for the marketplace's expert surface.
type ExpertService interface {
	// ListExperts returns all experts ordered by rank, served from cache when
	// fresh.
	ListExperts(ctx context.Context) ([]models.Profile, error)
	// SearchExperts returns experts whose name matches the query.
	SearchExperts(ctx context.Context, query string) ([]models.Profile, error)
	// ListCategories returns all categories in display order.
	ListCategories(ctx context.Context) ([]models.Category, error)
	// ExpertsByCategory returns the experts associated with a category.
	ExpertsByCategory(ctx context.Context, categoryID string) ([]models.Profile, error)
	// CreateCategory publishes a new browsing category.
	CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	// JoinCategory links an expert to an existing category.
	JoinCategory(ctx context.Context, expertID, categoryID string) error
	// GetExpertProfile returns the full profile page payload for an expert.
	GetExpertProfile(ctx context.Context, expertID string) (*ExpertProfileView, error)
	// UpdateProfile applies an expert's edits to their own profile.
	UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)

	// CreateService publishes a new service for an expert.
	CreateService(ctx context.Context, service *models.ExpertService) (*models.ExpertService, error)
	// UpdateService modifies one of the expert's services.
	UpdateService(ctx context.Context, service *models.ExpertService) (*models.ExpertService, error)
	// ListServices returns all of an expert's services, newest first.
	ListServices(ctx context.Context, expertID string) ([]models.ExpertService, error)
	// DeleteService removes one of the expert's services.
	DeleteService(ctx context.Context, serviceID, expertID string) error

	// AddVideo attaches an intro video to the expert's profile. A local file
	// path is uploaded to Cloudinary; a URL is stored as-is.
	AddVideo(ctx context.Context, expertID, localFilePath, url string) (*models.ExpertVideo, error)
	// DeleteVideo removes one of the expert's videos, destroying the backing
	// Cloudinary asset when one exists.
	DeleteVideo(ctx context.Context, videoID, expertID string) error

	// SuggestExpert records a user's proposal to onboard a new expert.
	SuggestExpert(ctx context.Context, suggestion *models.ExpertSuggestion) error
	// ListSuggestions returns all recorded suggestions, newest first.
	ListSuggestions(ctx context.Context) ([]models.ExpertSuggestion, error)
}

// DefaultExpertService is the production implementation.
type DefaultExpertService struct {
	Profiles    profileRepo.ProfileRepository
	Services    serviceRepo.ServiceRepository
	Categories  categoryRepo.CategoryRepository
	Videos      videoRepo.VideoRepository
	Suggestions suggestionRepo.SuggestionRepository

	CacheClient *redis.Client          // Optional; nil disables feed caching.
	Cloudinary  *cloudinary.Cloudinary // Optional; nil disables video uploads.
}
