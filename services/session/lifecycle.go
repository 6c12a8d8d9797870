package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expertly/models"
	"expertly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotSessionParty signals that the caller is neither the user nor the
// expert of the requested booking.
var ErrNotSessionParty = errors.New("profile is not a party to this session")

// CreateBooking runs the five-step creation flow: insert the booking as
// confirmed, read the service type, compute the auto-completion date, start
// the session, and open the conversation. The steps are not atomic as a
// whole: the first failing step aborts the rest and its error is returned,
// with earlier writes left in place.
func (s *DefaultSessionService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.SessionInfo, error) {
	if input.UserID == "" || input.ExpertID == "" || input.ServiceID == "" {
		return nil, fmt.Errorf("user, expert and service ids are required")
	}
	if input.PricePaid < 0 {
		return nil, fmt.Errorf("price paid must not be negative")
	}

	// 1. Create the booking. Chat is enabled from creation; it only counts
	// once the status reaches in_progress.
	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		ExpertID:    input.ExpertID,
		ServiceID:   input.ServiceID,
		PricePaid:   input.PricePaid,
		Status:      models.StatusConfirmed,
		ChatEnabled: true,
	}
	if err := s.Repo.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// 2. Read the service type to determine the completion policy.
	service, err := s.Services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", input.ServiceID, err)
	}

	// 3. Fixed-duration services auto-complete; per-session ones are closed
	// explicitly by the expert and carry no completion date.
	var autoCompletionDate *time.Time
	if d, fixed := models.AutoCompletionAfter(service.ServiceType); fixed {
		at := s.now().Add(d)
		autoCompletionDate = &at
	}

	// 4. Start the session immediately; session start time is the booking's
	// creation timestamp.
	updated, err := s.Repo.StartSession(ctx, booking.ID, autoCompletionDate)
	if err != nil {
		return nil, fmt.Errorf("failed to start session for booking %s: %w", booking.ID, err)
	}

	// 5. Open the conversation tied to this booking.
	conversation := &models.Conversation{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ExpertID:  input.ExpertID,
		BookingID: booking.ID,
		Status:    models.ConversationActive,
	}
	if err := s.Conversations.CreateConversation(ctx, conversation); err != nil {
		return nil, fmt.Errorf("failed to create conversation for booking %s: %w", booking.ID, err)
	}

	return &models.SessionInfo{
		BookingID:          updated.ID,
		SessionStartedAt:   booking.CreatedAt,
		ChatEnabled:        updated.ChatEnabled,
		AutoCompletionDate: updated.AutoCompletionDate,
		Status:             updated.Status,
	}, nil
}

// GetSession returns the booking behind a session. Only the booking's user
// or expert may read it.
func (s *DefaultSessionService) GetSession(ctx context.Context, bookingID, profileID string) (*models.Booking, error) {
	booking, err := s.Repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.UserID != profileID && booking.ExpertID != profileID {
		return nil, ErrNotSessionParty
	}
	return booking, nil
}

// CompleteSession closes a per-session booking on behalf of its expert. The
// eligibility checks live in the repository; here a failure of any kind maps
// to false, without distinguishing the reason to the caller.
func (s *DefaultSessionService) CompleteSession(ctx context.Context, bookingID, expertID, expertNotes string) bool {
	ok, err := s.Repo.CompleteSession(ctx, bookingID, expertID, expertNotes)
	if err != nil {
		utils.GetLogger().Error("Failed to complete session",
			zap.String("bookingID", bookingID),
			zap.String("expertID", expertID),
			zap.Error(err))
		return false
	}
	return ok
}
