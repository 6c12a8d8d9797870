package models

import "time"

// Conversation statuses.
const (
	ConversationActive   = "active"
	ConversationArchived = "archived"
)

// Conversation is a 1:1 channel between a user and an expert, optionally
// linked to the booking that opened it.
type Conversation struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	ExpertID  string    `bson:"expert_id" json:"expert_id"`
	BookingID string    `bson:"booking_id,omitempty" json:"booking_id,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
