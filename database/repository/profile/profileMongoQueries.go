package profileRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"expertly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListExperts returns all expert profiles ordered by expert rank ascending.
func (r *MongoProfileRepo) ListExperts(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "expert_rank", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"is_expert": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list experts: %w", err)
	}
	defer cursor.Close(ctx)

	var experts []models.Profile
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, fmt.Errorf("failed to decode experts: %w", err)
	}
	return experts, nil
}

// SearchExperts returns experts whose first or last name contains the query,
// case-insensitively.
func (r *MongoProfileRepo) SearchExperts(ctx context.Context, query string, limit int64) ([]models.Profile, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pattern := regexp.QuoteMeta(query)
	filter := bson.M{
		"is_expert": true,
		"$or": bson.A{
			bson.M{"first_name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"last_name": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "expert_rank", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search experts: %w", err)
	}
	defer cursor.Close(ctx)

	var experts []models.Profile
	if err := cursor.All(ctx, &experts); err != nil {
		return nil, fmt.Errorf("failed to decode expert search results: %w", err)
	}
	return experts, nil
}

// GetManyByIDs retrieves the profiles whose IDs are in ids.
func (r *MongoProfileRepo) GetManyByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}
