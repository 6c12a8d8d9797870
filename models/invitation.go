package models

import "time"

// Invitation statuses.
const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationExpired  = "expired"
)

// Invitation grants an email address the right to register with a role
// (typically "expert"). Expiry is checked at accept time.
type Invitation struct {
	ID         string     `bson:"id" json:"id"`
	Email      string     `bson:"email" json:"email"`
	Role       string     `bson:"role" json:"role"`
	Status     string     `bson:"status" json:"status"`
	InvitedBy  string     `bson:"invited_by,omitempty" json:"invited_by,omitempty"`
	InvitedAt  time.Time  `bson:"invited_at" json:"invited_at"`
	ExpiresAt  *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
	AcceptedAt *time.Time `bson:"accepted_at,omitempty" json:"accepted_at,omitempty"`
}
