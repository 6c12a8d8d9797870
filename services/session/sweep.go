package session

import (
	"context"

	"expertly/utils"

	"go.uber.org/zap"
)

// SweepExpiredSessions completes every in-progress session whose
// auto-completion date is at or before the current time, disabling chat as it
// goes, and returns the number of sessions closed. A second run with no
// intervening state change closes nothing. Returns 0 on error.
//
// There is no guard against a concurrent manual completion of the same
// booking; the persistence layer serializes the two writes and the last one
// wins.
func (s *DefaultSessionService) SweepExpiredSessions(ctx context.Context) int64 {
	count, err := s.Repo.CompleteExpiredSessions(ctx, s.now())
	if err != nil {
		utils.GetLogger().Error("Failed to sweep expired sessions", zap.Error(err))
		return 0
	}
	if count > 0 {
		utils.GetLogger().Info("Completed expired sessions", zap.Int64("count", count))
	}
	return count
}
