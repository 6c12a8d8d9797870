package access

import (
	"context"
	"fmt"
	"time"

	invitationRepo "expertly/database/repository/invitation"
	profileRepo "expertly/database/repository/profile"
	waitlistRepo "expertly/database/repository/waitlist"

	"expertly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultInvitationTTL is how long an invitation stays acceptable.
const DefaultInvitationTTL = 14 * 24 * time.Hour

// AccessService defines business logic for waitlist signups and invitations.
type AccessService interface {
	// JoinWaitlist records a public signup. Joining twice with the same email
	// returns the existing entry.
	JoinWaitlist(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error)
	// ListWaitlist returns all waitlist entries, oldest first.
	ListWaitlist(ctx context.Context) ([]models.WaitlistEntry, error)
	// Invite issues a role invitation to an email address.
	Invite(ctx context.Context, email, role, invitedBy string) (*models.Invitation, error)
	// AcceptInvitation redeems the pending invitation for the profile's
	// email, granting the invited role. Expired invitations are marked as
	// such and rejected.
	AcceptInvitation(ctx context.Context, profileID string) (*models.Invitation, error)
}

// DefaultAccessService is the production implementation.
type DefaultAccessService struct {
	Waitlist    waitlistRepo.WaitlistRepository
	Invitations invitationRepo.InvitationRepository
	Profiles    profileRepo.ProfileRepository

	// Now supplies the current time; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAccessService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// JoinWaitlist records a public signup. Joining twice with the same email
// returns the existing entry unchanged.
func (s *DefaultAccessService) JoinWaitlist(ctx context.Context, entry *models.WaitlistEntry) (*models.WaitlistEntry, error) {
	if entry.Email == "" {
		return nil, fmt.Errorf("email is required")
	}

	existing, err := s.Waitlist.GetByEmail(ctx, entry.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check waitlist: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	entry.ID = uuid.New().String()
	entry.Status = models.WaitlistPending
	if err := s.Waitlist.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to join waitlist: %w", err)
	}
	return entry, nil
}

// ListWaitlist returns all waitlist entries, oldest first.
func (s *DefaultAccessService) ListWaitlist(ctx context.Context) ([]models.WaitlistEntry, error) {
	entries, err := s.Waitlist.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}
	return entries, nil
}

// Invite issues a role invitation to an email address.
func (s *DefaultAccessService) Invite(ctx context.Context, email, role, invitedBy string) (*models.Invitation, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if role == "" {
		role = "expert"
	}

	now := s.now()
	expires := now.Add(DefaultInvitationTTL)
	invitation := &models.Invitation{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      role,
		Status:    models.InvitationPending,
		InvitedBy: invitedBy,
		InvitedAt: now,
		ExpiresAt: &expires,
	}
	if err := s.Invitations.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return invitation, nil
}

// AcceptInvitation redeems the pending invitation for the profile's email.
// The expiry check happens at accept time; an expired invitation is marked
// expired and rejected.
func (s *DefaultAccessService) AcceptInvitation(ctx context.Context, profileID string) (*models.Invitation, error) {
	profile, err := s.Profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", profileID, err)
	}

	invitation, err := s.Invitations.GetPendingByEmail(ctx, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invitation: %w", err)
	}
	if invitation == nil {
		return nil, fmt.Errorf("no pending invitation for %s", profile.Email)
	}

	now := s.now()
	if invitation.ExpiresAt != nil && now.After(*invitation.ExpiresAt) {
		if err := s.Invitations.MarkExpired(ctx, invitation.ID); err != nil {
			return nil, fmt.Errorf("failed to expire invitation: %w", err)
		}
		return nil, fmt.Errorf("invitation for %s has expired", profile.Email)
	}

	if err := s.Invitations.MarkAccepted(ctx, invitation.ID, now); err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	if invitation.Role == "expert" {
		if err := s.Profiles.UpdateSetDocument(ctx, profileID, bson.M{"is_expert": true}); err != nil {
			return nil, fmt.Errorf("failed to grant expert role: %w", err)
		}
	}

	accepted := *invitation
	accepted.Status = models.InvitationAccepted
	accepted.AcceptedAt = &now
	return &accepted, nil
}
