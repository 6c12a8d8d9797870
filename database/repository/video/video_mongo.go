package videoRepo

import (
	"context"
	"fmt"
	"time"

	"expertly/database"
	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoRepository defines methods for expert video data access.
type VideoRepository interface {
	// Create inserts a new video record.
	Create(ctx context.Context, video *models.ExpertVideo) error
	// GetByID retrieves a video by its unique ID.
	GetByID(ctx context.Context, id string) (*models.ExpertVideo, error)
	// ListByExpert returns an expert's videos, newest first.
	ListByExpert(ctx context.Context, expertID string) ([]models.ExpertVideo, error)
	// Delete removes a video record by its ID, scoped to the owning expert.
	Delete(ctx context.Context, id, expertID string) error
}

// MongoVideoRepo implements VideoRepository using MongoDB.
type MongoVideoRepo struct {
	coll *mongo.Collection
}

// NewMongoVideoRepo creates a new instance of VideoRepository using MongoDB.
func NewMongoVideoRepo() VideoRepository {
	coll := database.DB().Collection("expert_videos")
	repo := &MongoVideoRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoVideoRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "expert_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new video document.
func (r *MongoVideoRepo) Create(ctx context.Context, video *models.ExpertVideo) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	video.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a video by its unique ID.
func (r *MongoVideoRepo) GetByID(ctx context.Context, id string) (*models.ExpertVideo, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var video models.ExpertVideo
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&video); err != nil {
		return nil, fmt.Errorf("failed to fetch video with id %s: %w", id, err)
	}
	return &video, nil
}

// ListByExpert returns an expert's videos, newest first.
func (r *MongoVideoRepo) ListByExpert(ctx context.Context, expertID string) ([]models.ExpertVideo, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"expert_id": expertID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer cursor.Close(ctx)

	var videos []models.ExpertVideo
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, fmt.Errorf("failed to decode videos: %w", err)
	}
	return videos, nil
}

// Delete removes a video document by its ID, scoped to the owning expert.
func (r *MongoVideoRepo) Delete(ctx context.Context, id, expertID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "expert_id": expertID})
	if err != nil {
		return fmt.Errorf("failed to delete video with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("video with id %s not found", id)
	}
	return nil
}
