package models

import "time"

// Booking statuses. A booking is inserted as StatusConfirmed and moved to
// StatusInProgress in the same creation flow; it terminates in
// StatusCompleted (explicit completion or expiry sweep). StatusCancelled is
// modeled for completeness but no operation currently produces it.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking represents a purchase of an expert service by a user.
type Booking struct {
	ID                 string     `bson:"id" json:"id"`
	UserID             string     `bson:"user_id" json:"user_id"`
	ExpertID           string     `bson:"expert_id" json:"expert_id"`
	ServiceID          string     `bson:"service_id" json:"service_id"`
	PricePaid          float64    `bson:"price_paid" json:"price_paid"`
	Status             string     `bson:"status" json:"status"`
	ChatEnabled        bool       `bson:"chat_enabled" json:"chat_enabled"`
	AutoCompletionDate *time.Time `bson:"auto_completion_date,omitempty" json:"auto_completion_date,omitempty"`
	Notes              string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}

// BookingInput carries the fields a caller supplies to create a booking.
type BookingInput struct {
	UserID    string  `json:"user_id"`
	ExpertID  string  `json:"expert_id"`
	ServiceID string  `json:"service_id"`
	PricePaid float64 `json:"price_paid"`
}
