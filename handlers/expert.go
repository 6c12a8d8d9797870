package handlers

import (
	"net/http"
	"strings"

	"expertly/models"
	expertService "expertly/services/expert"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExpertHandler exposes the marketplace's expert surface: discovery,
// profiles, services, videos, and suggestions.
type ExpertHandler struct {
	Experts expertService.ExpertService
}

// ListExpertsHandler handles GET /experts.
func (h *ExpertHandler) ListExpertsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	experts, err := h.Experts.ListExperts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list experts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, experts)
}

// SearchExpertsHandler handles GET /experts/search?q=.
func (h *ExpertHandler) SearchExpertsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	experts, err := h.Experts.SearchExperts(c.Request.Context(), query)
	if err != nil {
		logger.Error("Expert search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, experts)
}

// ListCategoriesHandler handles GET /experts/categories.
func (h *ExpertHandler) ListCategoriesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	categories, err := h.Experts.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ExpertsByCategoryHandler handles GET /experts/categories/:id.
func (h *ExpertHandler) ExpertsByCategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	categoryID := c.Param("id")
	experts, err := h.Experts.ExpertsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		logger.Error("Failed to list experts by category", zap.String("category_id", categoryID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, experts)
}

// CreateCategoryHandler handles POST /experts/categories.
func (h *ExpertHandler) CreateCategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Experts.CreateCategory(c.Request.Context(), &category)
	if err != nil {
		logger.Error("Failed to create category", zap.String("name", category.Name), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// JoinCategoryHandler handles POST /experts/categories/:id/join.
func (h *ExpertHandler) JoinCategoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")
	categoryID := c.Param("id")

	if err := h.Experts.JoinCategory(c.Request.Context(), expertID, categoryID); err != nil {
		logger.Error("Failed to join category",
			zap.String("expert_id", expertID),
			zap.String("category_id", categoryID),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category joined"})
}

// ListSuggestionsHandler handles GET /experts/suggestions.
func (h *ExpertHandler) ListSuggestionsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	suggestions, err := h.Experts.ListSuggestions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list suggestions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

// GetExpertProfileHandler handles GET /experts/id/:id.
func (h *ExpertHandler) GetExpertProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.Param("id")
	view, err := h.Experts.GetExpertProfile(c.Request.Context(), expertID)
	if err != nil {
		logger.Error("Expert profile not found", zap.String("expert_id", expertID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateProfileHandler handles PUT /experts/profile.
func (h *ExpertHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	profile.ID = profileID

	updated, err := h.Experts.UpdateProfile(c.Request.Context(), &profile)
	if err != nil {
		logger.Error("Failed to update expert profile", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SuggestExpertHandler handles POST /experts/suggestions.
func (h *ExpertHandler) SuggestExpertHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	var suggestion models.ExpertSuggestion
	if err := c.ShouldBindJSON(&suggestion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	suggestion.SubmittedBy = profileID

	if err := h.Experts.SuggestExpert(c.Request.Context(), &suggestion); err != nil {
		logger.Error("Failed to record expert suggestion", zap.String("suggested_by", profileID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, suggestion)
}
