package session

import (
	"context"
	"time"

	conversationRepo "expertly/database/repository/conversation"
	serviceRepo "expertly/database/repository/service"
	sessionRepo "expertly/database/repository/session"

	"expertly/models"
)

// SessionService owns the booking lifecycle: it turns a service purchase into
// an active, time-bounded, chat-enabled session and closes it out again,
// either explicitly (expert action) or by the expiry sweep.
type SessionService interface {
	// CreateBooking creates a booking, starts the session immediately, and
	// opens the conversation between user and expert.
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.SessionInfo, error)
	// GetSession returns a booking to one of its parties. Profiles outside the
	// booking are denied with ErrNotSessionParty.
	GetSession(ctx context.Context, bookingID, profileID string) (*models.Booking, error)
	// CanUserChatWithExpert reports whether the user currently holds chat
	// access to the expert. Lookup errors deny access.
	CanUserChatWithExpert(ctx context.Context, userID, expertID string) bool
	// CompleteSession closes a per-session booking on behalf of its expert.
	// Returns false when the booking does not exist, is not the expert's, is
	// not in progress, or is not eligible for manual completion.
	CompleteSession(ctx context.Context, bookingID, expertID, expertNotes string) bool
	// UserActiveSessions lists the user's in-progress sessions. Returns an
	// empty slice on error.
	UserActiveSessions(ctx context.Context, userID string) []models.SessionSummary
	// ExpertActiveSessions lists the expert's in-progress sessions. Returns
	// an empty slice on error.
	ExpertActiveSessions(ctx context.Context, expertID string) []models.SessionSummary
	// SweepExpiredSessions completes every in-progress session whose
	// auto-completion date has passed and returns the count. Returns 0 on
	// error.
	SweepExpiredSessions(ctx context.Context) int64
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Repo          sessionRepo.SessionRepository
	Services      serviceRepo.ServiceRepository
	Conversations conversationRepo.ConversationRepository

	// Now supplies the current time; defaults to time.Now. Tests inject a
	// fixed clock here.
	Now func() time.Time
}

func (s *DefaultSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
