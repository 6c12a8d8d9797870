package session

import (
	"context"

	"expertly/utils"

	"go.uber.org/zap"
)

// CanUserChatWithExpert reports whether the user currently holds chat access
// to the expert: an in-progress, chat-enabled booking must exist for the pair,
// and a fixed-duration session must not have passed its auto-completion date.
// The expiry check is read-time only; the booking itself is closed later by
// the sweep. Any lookup error denies access.
func (s *DefaultSessionService) CanUserChatWithExpert(ctx context.Context, userID, expertID string) bool {
	booking, err := s.Repo.LatestChatEnabledBooking(ctx, userID, expertID)
	if err != nil {
		utils.GetLogger().Debug("Chat permission denied",
			zap.String("userID", userID),
			zap.String("expertID", expertID),
			zap.Error(err))
		return false
	}

	if booking.AutoCompletionDate != nil && s.now().After(*booking.AutoCompletionDate) {
		return false
	}
	return true
}
