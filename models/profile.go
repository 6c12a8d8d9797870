package models

import "time"

// Profile represents a platform account. Experts are profiles with IsExpert
// set; the expert-facing fields are empty for regular users.
type Profile struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"` // External auth subject; equals ID for password accounts.
	Email           string    `bson:"email" json:"email"`
	FirstName       string    `bson:"first_name,omitempty" json:"first_name,omitempty"`
	LastName        string    `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location        string    `bson:"location,omitempty" json:"location,omitempty"`
	HomeCountry     string    `bson:"home_country,omitempty" json:"home_country,omitempty"`
	IsExpert        bool      `bson:"is_expert" json:"is_expert"`
	ExpertRank      int       `bson:"expert_rank,omitempty" json:"expert_rank,omitempty"`
	ProfileBio      string    `bson:"profile_bio,omitempty" json:"profile_bio,omitempty"`
	Specialties     []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	StartingPrice   float64   `bson:"starting_price,omitempty" json:"starting_price,omitempty"`
	ProfileImageURL string    `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`
	PreviewImageURL string    `bson:"preview_image_url,omitempty" json:"preview_image_url,omitempty"`
	LinkedinURL     string    `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	InstagramURL    string    `bson:"instagram_url,omitempty" json:"instagram_url,omitempty"`
	FacebookURL     string    `bson:"facebook_url,omitempty" json:"facebook_url,omitempty"`
	FCMToken        string    `bson:"fcm_token,omitempty" json:"-"`
	Password        string    `bson:"-" json:"password,omitempty"` // Plain text, input only.
	PasswordHash    string    `bson:"password_hash,omitempty" json:"-"`
	TokenHash       string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// DisplayName returns the profile's human-readable name.
func (p *Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	case p.LastName != "":
		return p.LastName
	default:
		return p.Email
	}
}
