package invitationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expertly/database"
	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvitationRepository defines methods for invitation data access.
type InvitationRepository interface {
	// Create inserts a new invitation record.
	Create(ctx context.Context, invitation *models.Invitation) error
	// GetPendingByEmail returns the pending invitation for an email, or
	// (nil, nil) when none exists.
	GetPendingByEmail(ctx context.Context, email string) (*models.Invitation, error)
	// MarkAccepted stamps an invitation accepted.
	MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error
	// MarkExpired stamps an invitation expired.
	MarkExpired(ctx context.Context, id string) error
}

// MongoInvitationRepo implements InvitationRepository using MongoDB.
type MongoInvitationRepo struct {
	coll *mongo.Collection
}

// NewMongoInvitationRepo creates a new instance of InvitationRepository using MongoDB.
func NewMongoInvitationRepo() InvitationRepository {
	coll := database.DB().Collection("invitations")
	repo := &MongoInvitationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoInvitationRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new invitation document.
func (r *MongoInvitationRepo) Create(ctx context.Context, invitation *models.Invitation) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, invitation); err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

// GetPendingByEmail returns the pending invitation for an email, or (nil, nil)
// when none exists.
func (r *MongoInvitationRepo) GetPendingByEmail(ctx context.Context, email string) (*models.Invitation, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email, "status": models.InvitationPending}
	opts := options.FindOne().SetSort(bson.D{{Key: "invited_at", Value: -1}})

	var invitation models.Invitation
	err := r.coll.FindOne(ctx, filter, opts).Decode(&invitation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invitation for %s: %w", email, err)
	}
	return &invitation, nil
}

// MarkAccepted stamps an invitation accepted.
func (r *MongoInvitationRepo) MarkAccepted(ctx context.Context, id string, acceptedAt time.Time) error {
	return r.setStatus(ctx, id, bson.M{"status": models.InvitationAccepted, "accepted_at": acceptedAt})
}

// MarkExpired stamps an invitation expired.
func (r *MongoInvitationRepo) MarkExpired(ctx context.Context, id string) error {
	return r.setStatus(ctx, id, bson.M{"status": models.InvitationExpired})
}

func (r *MongoInvitationRepo) setStatus(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update invitation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("invitation with id %s not found", id)
	}
	return nil
}
