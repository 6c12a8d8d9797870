package models

import "time"

// Category groups experts for marketplace browsing.
type Category struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	SortOrder   int       `bson:"sort_order" json:"sort_order"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// CategoryAssociation links an expert profile to a category.
type CategoryAssociation struct {
	ID         string    `bson:"id" json:"id"`
	ExpertID   string    `bson:"expert_id" json:"expert_id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
