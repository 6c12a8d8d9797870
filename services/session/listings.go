package session

import (
	"context"

	"expertly/models"
	"expertly/utils"

	"go.uber.org/zap"
)

// UserActiveSessions lists the user's in-progress sessions joined with
// service details and the expert's name. Listing errors surface as an empty
// slice so the caller's view degrades instead of failing.
func (s *DefaultSessionService) UserActiveSessions(ctx context.Context, userID string) []models.SessionSummary {
	summaries, err := s.Repo.ActiveSessionsByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list user sessions", zap.String("userID", userID), zap.Error(err))
		return []models.SessionSummary{}
	}
	return summaries
}

// ExpertActiveSessions lists the expert's in-progress sessions joined with
// service details and the user's name. Listing errors surface as an empty
// slice.
func (s *DefaultSessionService) ExpertActiveSessions(ctx context.Context, expertID string) []models.SessionSummary {
	summaries, err := s.Repo.ActiveSessionsByExpert(ctx, expertID)
	if err != nil {
		utils.GetLogger().Error("Failed to list expert sessions", zap.String("expertID", expertID), zap.Error(err))
		return []models.SessionSummary{}
	}
	return summaries
}
