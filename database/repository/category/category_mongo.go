package categoryRepo

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

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	// List returns all categories ordered by sort order.
	List(ctx context.Context) ([]models.Category, error)
	// Create inserts a new category record.
	Create(ctx context.Context, category *models.Category) error
	// Associate links an expert to a category.
	Associate(ctx context.Context, assoc *models.CategoryAssociation) error
	// ExpertIDsByCategory returns the IDs of experts linked to a category.
	ExpertIDsByCategory(ctx context.Context, categoryID string) ([]string, error)
	// CategoryIDsByExpert returns the IDs of categories an expert is linked to.
	CategoryIDsByExpert(ctx context.Context, expertID string) ([]string, error)
}

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	catColl   *mongo.Collection
	assocColl *mongo.Collection
}

// NewMongoCategoryRepo creates a new instance of CategoryRepository using MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	db := database.DB()
	repo := &MongoCategoryRepo{
		catColl:   db.Collection("expert_categories"),
		assocColl: db.Collection("expert_category_associations"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoCategoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	catIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.catColl.Indexes().CreateMany(ctx, catIndexes); err != nil {
		return fmt.Errorf("failed to create category indexes: %w", err)
	}

	assocIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "expert_id", Value: 1}, {Key: "category_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.assocColl.Indexes().CreateMany(ctx, assocIndexes); err != nil {
		return fmt.Errorf("failed to create association indexes: %w", err)
	}
	return nil
}

// List returns all categories ordered by sort order.
func (r *MongoCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	cursor, err := r.catColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Create inserts a new category document.
func (r *MongoCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	category.CreatedAt = time.Now()
	if _, err := r.catColl.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Associate links an expert to a category.
func (r *MongoCategoryRepo) Associate(ctx context.Context, assoc *models.CategoryAssociation) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	assoc.CreatedAt = time.Now()
	if _, err := r.assocColl.InsertOne(ctx, assoc); err != nil {
		return fmt.Errorf("failed to create category association: %w", err)
	}
	return nil
}

// ExpertIDsByCategory returns the IDs of experts linked to a category.
func (r *MongoCategoryRepo) ExpertIDsByCategory(ctx context.Context, categoryID string) ([]string, error) {
	return r.associationIDs(ctx, bson.M{"category_id": categoryID}, "expert_id")
}

// CategoryIDsByExpert returns the IDs of categories an expert is linked to.
func (r *MongoCategoryRepo) CategoryIDsByExpert(ctx context.Context, expertID string) ([]string, error) {
	return r.associationIDs(ctx, bson.M{"expert_id": expertID}, "category_id")
}

func (r *MongoCategoryRepo) associationIDs(ctx context.Context, filter bson.M, field string) ([]string, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.assocColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list category associations: %w", err)
	}
	defer cursor.Close(ctx)

	var assocs []models.CategoryAssociation
	if err := cursor.All(ctx, &assocs); err != nil {
		return nil, fmt.Errorf("failed to decode category associations: %w", err)
	}

	ids := make([]string, 0, len(assocs))
	for _, a := range assocs {
		if field == "expert_id" {
			ids = append(ids, a.ExpertID)
		} else {
			ids = append(ids, a.CategoryID)
		}
	}
	return ids, nil
}
