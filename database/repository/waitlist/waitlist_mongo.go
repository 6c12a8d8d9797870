package waitlistRepo

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

// WaitlistRepository defines methods for waitlist data access.
type WaitlistRepository interface {
	// Create inserts a new waitlist entry.
	Create(ctx context.Context, entry *models.WaitlistEntry) error
	// GetByEmail returns the waitlist entry for an email, or (nil, nil) when
	// none exists.
	GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error)
	// List returns all waitlist entries, oldest first.
	List(ctx context.Context) ([]models.WaitlistEntry, error)
}

// MongoWaitlistRepo implements WaitlistRepository using MongoDB.
type MongoWaitlistRepo struct {
	coll *mongo.Collection
}

// NewMongoWaitlistRepo creates a new instance of WaitlistRepository using MongoDB.
func NewMongoWaitlistRepo() WaitlistRepository {
	coll := database.DB().Collection("waitlist")
	repo := &MongoWaitlistRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoWaitlistRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new waitlist entry.
func (r *MongoWaitlistRepo) Create(ctx context.Context, entry *models.WaitlistEntry) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	return nil
}

// GetByEmail returns the waitlist entry for an email, or (nil, nil) when none exists.
func (r *MongoWaitlistRepo) GetByEmail(ctx context.Context, email string) (*models.WaitlistEntry, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var entry models.WaitlistEntry
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch waitlist entry for %s: %w", email, err)
	}
	return &entry, nil
}

// List returns all waitlist entries, oldest first.
func (r *MongoWaitlistRepo) List(ctx context.Context) ([]models.WaitlistEntry, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.WaitlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode waitlist entries: %w", err)
	}
	return entries, nil
}
