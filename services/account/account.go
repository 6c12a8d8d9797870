package account

import (
	"context"
	"fmt"
	"time"

	profileRepo "expertly/database/repository/profile"
	"expertly/models"
	"expertly/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse contains only the profile's ID and the JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// AccountService defines business logic for account operations.
type AccountService interface {
	// Register validates the registration details, creates a new profile,
	// generates a token, stores its hash, and returns the ID and token.
	Register(ctx context.Context, profile models.Profile) (*AuthResponse, error)
	// Authenticate verifies credentials and returns ID and token.
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	// GetProfileByID retrieves a profile by its unique ID.
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	// UpdateFCMToken stores the push token for a profile's device.
	UpdateFCMToken(ctx context.Context, id, token string) error
	// RevokeToken clears the stored token hash, invalidating issued tokens.
	RevokeToken(ctx context.Context, id string) error
	// DeleteAccount removes a profile record.
	DeleteAccount(ctx context.Context, id string) error
}

// DefaultAccountService is the production implementation.
type DefaultAccountService struct {
	Repo profileRepo.ProfileRepository
}

// Register validates required fields, hashes the password, sets defaults,
// persists the profile, and returns the new ID with a signed token.
func (s *DefaultAccountService) Register(ctx context.Context, profile models.Profile) (*AuthResponse, error) {
	if profile.Email == "" || profile.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("profile with email %s already exists", profile.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(profile.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	profile.PasswordHash = string(hashedPassword)
	profile.Password = "" // Clear plain-text password.

	profile.ID = uuid.New().String()
	profile.UserID = profile.ID
	// Expert status is granted through invitations, never self-assigned.
	profile.IsExpert = false
	profile.ExpertRank = 0

	token, err := utils.GenerateToken(profile.ID, profile.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	profile.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &AuthResponse{ID: profile.ID, Token: token}, nil
}

// Authenticate verifies the email/password pair, rotates the stored token
// hash, and returns a fresh token.
func (s *DefaultAccountService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	profile, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(profile.ID, profile.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(ctx, profile.ID, map[string]interface{}{"token_hash": utils.HashToken(token)}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	return &AuthResponse{ID: profile.ID, Token: token}, nil
}

// GetProfileByID retrieves a profile by its unique ID.
func (s *DefaultAccountService) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

// UpdateFCMToken stores the push token for a profile's device.
func (s *DefaultAccountService) UpdateFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.UpdateSetDocument(ctx, id, map[string]interface{}{"fcm_token": token}); err != nil {
		return fmt.Errorf("failed to update fcm token: %w", err)
	}
	return nil
}

// RevokeToken clears the stored token hash, invalidating issued tokens.
func (s *DefaultAccountService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.UpdateSetDocument(ctx, id, map[string]interface{}{"token_hash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// DeleteAccount removes a profile record.
func (s *DefaultAccountService) DeleteAccount(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
