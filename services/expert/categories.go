package expert

import (
	"context"
	"fmt"
	"strings"

	"expertly/models"

	"github.com/google/uuid"
)

// CreateCategory publishes a new browsing category.
func (s *DefaultExpertService) CreateCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	category.ID = uuid.New().String()
	if err := s.Categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

// JoinCategory links an expert to an existing category. Joining the same
// category twice fails on the unique association index.
func (s *DefaultExpertService) JoinCategory(ctx context.Context, expertID, categoryID string) error {
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	found := false
	for _, cat := range categories {
		if cat.ID == categoryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("category %s not found", categoryID)
	}

	assoc := &models.CategoryAssociation{
		ID:         uuid.New().String(),
		ExpertID:   expertID,
		CategoryID: categoryID,
	}
	if err := s.Categories.Associate(ctx, assoc); err != nil {
		return fmt.Errorf("failed to join category %s: %w", categoryID, err)
	}
	return nil
}

// expertCategories resolves the categories an expert belongs to, in display
// order.
func (s *DefaultExpertService) expertCategories(ctx context.Context, expertID string) ([]models.Category, error) {
	ids, err := s.Categories.CategoryIDsByExpert(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve categories for expert %s: %w", expertID, err)
	}
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	all, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}
	categories := make([]models.Category, 0, len(ids))
	for _, cat := range all {
		if member[cat.ID] {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}
