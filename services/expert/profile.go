package expert

import (
	"context"
	"fmt"

	"expertly/models"

	"github.com/google/uuid"
)

// GetExpertProfile returns the full profile page payload: the expert, their
// active services (cheapest first), their videos (newest first), and the
// categories they belong to.
func (s *DefaultExpertService) GetExpertProfile(ctx context.Context, expertID string) (*ExpertProfileView, error) {
	profile, err := s.Profiles.GetExpertByID(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expert %s: %w", expertID, err)
	}

	services, err := s.Services.ListActiveByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services for expert %s: %w", expertID, err)
	}

	videos, err := s.Videos.ListByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos for expert %s: %w", expertID, err)
	}

	categories, err := s.expertCategories(ctx, expertID)
	if err != nil {
		return nil, err
	}

	return &ExpertProfileView{
		Profile:    *profile,
		Services:   services,
		Videos:     videos,
		Categories: categories,
	}, nil
}

// UpdateProfile applies an expert's edits to their own profile. Account and
// ranking fields are preserved from the stored record.
func (s *DefaultExpertService) UpdateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	existing, err := s.Profiles.GetByID(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", profile.ID, err)
	}

	// Only presentation fields are caller-editable.
	existing.FirstName = profile.FirstName
	existing.LastName = profile.LastName
	existing.Bio = profile.Bio
	existing.ProfileBio = profile.ProfileBio
	existing.Location = profile.Location
	existing.HomeCountry = profile.HomeCountry
	existing.Specialties = profile.Specialties
	existing.StartingPrice = profile.StartingPrice
	existing.ProfileImageURL = profile.ProfileImageURL
	existing.PreviewImageURL = profile.PreviewImageURL
	existing.LinkedinURL = profile.LinkedinURL
	existing.InstagramURL = profile.InstagramURL
	existing.FacebookURL = profile.FacebookURL

	if err := s.Profiles.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update profile %s: %w", profile.ID, err)
	}

	s.invalidateFeedCache(ctx)
	return existing, nil
}

// SuggestExpert records a user's proposal to onboard a new expert.
func (s *DefaultExpertService) SuggestExpert(ctx context.Context, suggestion *models.ExpertSuggestion) error {
	if suggestion.Name == "" || suggestion.Reason == "" {
		return fmt.Errorf("suggestion name and reason are required")
	}
	suggestion.ID = uuid.New().String()
	if err := s.Suggestions.Create(ctx, suggestion); err != nil {
		return fmt.Errorf("failed to record suggestion: %w", err)
	}
	return nil
}

// ListSuggestions returns every recorded onboarding suggestion, newest first.
func (s *DefaultExpertService) ListSuggestions(ctx context.Context) ([]models.ExpertSuggestion, error) {
	suggestions, err := s.Suggestions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}
