package expert

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"expertly/models"
	"expertly/utils"

	"go.uber.org/zap"
)

const (
	expertFeedCacheKey = "experts:feed"
	expertFeedCacheTTL = 5 * time.Minute
)

// ListExperts returns all experts ordered by rank. The feed is cached in
// Redis for a few minutes; a cache failure falls through to the database.
func (s *DefaultExpertService) ListExperts(ctx context.Context) ([]models.Profile, error) {
	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, expertFeedCacheKey).Result()
		if err == nil {
			var experts []models.Profile
			if err := json.Unmarshal([]byte(cached), &experts); err == nil {
				return experts, nil
			}
		}
	}

	experts, err := s.Profiles.ListExperts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experts: %w", err)
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(experts); err == nil {
			if err := s.CacheClient.Set(ctx, expertFeedCacheKey, data, expertFeedCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache expert feed", zap.Error(err))
			}
		}
	}
	return experts, nil
}

// SearchExperts returns experts whose first or last name contains the query.
func (s *DefaultExpertService) SearchExperts(ctx context.Context, query string) ([]models.Profile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	experts, err := s.Profiles.SearchExperts(ctx, query, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to search experts: %w", err)
	}
	return experts, nil
}

// ListCategories returns all categories in display order.
func (s *DefaultExpertService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ExpertsByCategory returns the experts associated with a category, in rank
// order.
func (s *DefaultExpertService) ExpertsByCategory(ctx context.Context, categoryID string) ([]models.Profile, error) {
	ids, err := s.Categories.ExpertIDsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	experts, err := s.Profiles.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experts for category %s: %w", categoryID, err)
	}
	return experts, nil
}

// invalidateFeedCache drops the cached expert feed after a profile edit.
func (s *DefaultExpertService) invalidateFeedCache(ctx context.Context) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(ctx, expertFeedCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate expert feed cache", zap.Error(err))
	}
}
