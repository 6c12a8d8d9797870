package models

import "time"

// Waitlist entry statuses.
const (
	WaitlistPending  = "pending"
	WaitlistApproved = "approved"
	WaitlistRejected = "rejected"
)

// WaitlistEntry is a public signup waiting for access.
type WaitlistEntry struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string    `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
