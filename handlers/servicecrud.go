package handlers

import (
	"net/http"

	"expertly/models"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateServiceHandler handles POST /experts/services.
func (h *ExpertHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")

	var service models.ExpertService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	service.ExpertID = expertID

	created, err := h.Experts.CreateService(c.Request.Context(), &service)
	if err != nil {
		logger.Error("Failed to create service", zap.String("expert_id", expertID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /experts/services/:id.
func (h *ExpertHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")

	var service models.ExpertService
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	service.ID = c.Param("id")
	service.ExpertID = expertID

	updated, err := h.Experts.UpdateService(c.Request.Context(), &service)
	if err != nil {
		logger.Error("Failed to update service", zap.String("service_id", service.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListMyServicesHandler handles GET /experts/services.
func (h *ExpertHandler) ListMyServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")

	services, err := h.Experts.ListServices(c.Request.Context(), expertID)
	if err != nil {
		logger.Error("Failed to list services", zap.String("expert_id", expertID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// DeleteServiceHandler handles DELETE /experts/services/:id.
func (h *ExpertHandler) DeleteServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	expertID := c.GetString("profileID")
	serviceID := c.Param("id")

	if err := h.Experts.DeleteService(c.Request.Context(), serviceID, expertID); err != nil {
		logger.Error("Failed to delete service", zap.String("service_id", serviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
