package models

import "time"

// SessionInfo describes a freshly started session. SessionStartedAt is the
// booking's creation timestamp.
type SessionInfo struct {
	BookingID          string     `json:"bookingId"`
	SessionStartedAt   time.Time  `json:"sessionStartedAt"`
	ChatEnabled        bool       `json:"chatEnabled"`
	AutoCompletionDate *time.Time `json:"autoCompletionDate,omitempty"`
	Status             string     `json:"status"`
}

// SessionSummary is one row of an active-session listing: the booking joined
// with its service title/type and the counterpart's name.
type SessionSummary struct {
	BookingID          string     `bson:"id" json:"bookingId"`
	CreatedAt          time.Time  `bson:"created_at" json:"createdAt"`
	ChatEnabled        bool       `bson:"chat_enabled" json:"chatEnabled"`
	AutoCompletionDate *time.Time `bson:"auto_completion_date,omitempty" json:"autoCompletionDate,omitempty"`
	Status             string     `bson:"status" json:"status"`
	ServiceTitle       string     `bson:"service_title" json:"serviceTitle"`
	ServiceType        string     `bson:"service_type" json:"serviceType"`
	CounterpartID      string     `bson:"counterpart_id" json:"counterpartId"`
	CounterpartName    string     `bson:"counterpart_name" json:"counterpartName"`
}
