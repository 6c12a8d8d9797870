package models

import "time"

// ExpertSuggestion is a user-submitted proposal to onboard a new expert.
type ExpertSuggestion struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Reason      string    `bson:"reason" json:"reason"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	SubmittedBy string    `bson:"submitted_by,omitempty" json:"submitted_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
