package models

import "time"

// ExpertVideo is an intro video shown on an expert's profile page.
type ExpertVideo struct {
	ID        string    `bson:"id" json:"id"`
	ExpertID  string    `bson:"expert_id" json:"expert_id"`
	URL       string    `bson:"url" json:"url"`
	PublicID  string    `bson:"public_id,omitempty" json:"public_id,omitempty"` // Cloudinary asset ID, empty for external links.
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
