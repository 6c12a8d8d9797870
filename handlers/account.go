package handlers

import (
	"net/http"

	"expertly/models"
	accountService "expertly/services/account"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes registration, login, and self-service account
// endpoints.
type AccountHandler struct {
	Accounts accountService.AccountService
}

// RegisterHandler handles POST /accounts/register.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email     string `json:"email" binding:"required"`
		Password  string `json:"password" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile := models.Profile{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	resp, err := h.Accounts.Register(c.Request.Context(), profile)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateHandler handles POST /accounts/login.
func (h *AccountHandler) AuthenticateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeHandler handles GET /accounts/me.
func (h *AccountHandler) GetMeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	profile, err := h.Accounts.GetProfileByID(c.Request.Context(), profileID)
	if err != nil {
		logger.Error("Profile not found", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateFCMTokenHandler handles PUT /accounts/fcm-token.
func (h *AccountHandler) UpdateFCMTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	var req struct {
		FCMToken string `json:"fcm_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Accounts.UpdateFCMToken(c.Request.Context(), profileID, req.FCMToken); err != nil {
		logger.Error("Failed to update FCM token", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated"})
}

// RevokeTokenHandler handles DELETE /accounts/revoke.
func (h *AccountHandler) RevokeTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	if err := h.Accounts.RevokeToken(c.Request.Context(), profileID); err != nil {
		logger.Error("Failed to revoke token", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

// DeleteAccountHandler handles DELETE /accounts.
func (h *AccountHandler) DeleteAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	if err := h.Accounts.DeleteAccount(c.Request.Context(), profileID); err != nil {
		logger.Error("Failed to delete account", zap.String("id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
