package sessionRepo

import (
	"context"
	"time"

	"expertly/models"
)

// SessionRepository defines the data access methods used by the session
// lifecycle service.
type SessionRepository interface {
	// CreateBooking persists a new booking record.
	CreateBooking(ctx context.Context, booking *models.Booking) error
	// GetBookingByID retrieves a booking by its unique ID.
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// StartSession transitions a booking to in_progress, applying the given
	// auto-completion date (nil for per-session service types), and returns
	// the updated booking.
	StartSession(ctx context.Context, bookingID string, autoCompletionDate *time.Time) (*models.Booking, error)
	// LatestChatEnabledBooking returns the most recently created booking for
	// the (user, expert) pair that is in_progress with chat enabled.
	LatestChatEnabledBooking(ctx context.Context, userID, expertID string) (*models.Booking, error)
	// ActiveSessionsByUser lists in-progress, chat-enabled bookings for a
	// user, joined with service title/type and the expert's name.
	ActiveSessionsByUser(ctx context.Context, userID string) ([]models.SessionSummary, error)
	// ActiveSessionsByExpert lists in-progress, chat-enabled bookings for an
	// expert, joined with service title/type and the user's name.
	ActiveSessionsByExpert(ctx context.Context, expertID string) ([]models.SessionSummary, error)
	// CompleteSession closes a booking on behalf of its expert. The booking
	// must exist, belong to the expert, be in_progress, and reference a
	// per-session service type. Returns false when any condition fails.
	CompleteSession(ctx context.Context, bookingID, expertID, notes string) (bool, error)
	// CompleteExpiredSessions closes every in-progress booking whose
	// auto-completion date is at or before cutoff and returns the count.
	CompleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}
