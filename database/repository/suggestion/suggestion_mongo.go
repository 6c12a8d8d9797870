package suggestionRepo

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

// SuggestionRepository defines methods for expert suggestion data access.
type SuggestionRepository interface {
	// Create inserts a new suggestion record.
	Create(ctx context.Context, suggestion *models.ExpertSuggestion) error
	// List returns all suggestions, newest first.
	List(ctx context.Context) ([]models.ExpertSuggestion, error)
}

// MongoSuggestionRepo implements SuggestionRepository using MongoDB.
type MongoSuggestionRepo struct {
	coll *mongo.Collection
}

// NewMongoSuggestionRepo creates a new instance of SuggestionRepository using MongoDB.
func NewMongoSuggestionRepo() SuggestionRepository {
	return &MongoSuggestionRepo{coll: database.DB().Collection("expert_suggestions")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// Create inserts a new suggestion document.
func (r *MongoSuggestionRepo) Create(ctx context.Context, suggestion *models.ExpertSuggestion) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	suggestion.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, suggestion); err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

// List returns all suggestions, newest first.
func (r *MongoSuggestionRepo) List(ctx context.Context) ([]models.ExpertSuggestion, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer cursor.Close(ctx)

	var suggestions []models.ExpertSuggestion
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return suggestions, nil
}
