package models

import "time"

// ExpertService is a bookable offering published by an expert.
type ExpertService struct {
	ID                string    `bson:"id" json:"id"`
	ExpertID          string    `bson:"expert_id" json:"expert_id"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	ServiceType       string    `bson:"service_type" json:"service_type"`
	Price             float64   `bson:"price" json:"price"`
	AvailabilitySlots int       `bson:"availability_slots" json:"availability_slots"`
	IsActive          bool      `bson:"is_active" json:"is_active"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updated_at"`
}
