package handlers

import (
	"net/http"

	"expertly/models"
	accessService "expertly/services/access"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessHandler exposes the waitlist and invitation endpoints that gate
// expert onboarding.
type AccessHandler struct {
	Access accessService.AccessService
}

// JoinWaitlistHandler handles POST /waitlist. Public.
func (h *AccessHandler) JoinWaitlistHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var entry models.WaitlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	stored, err := h.Access.JoinWaitlist(c.Request.Context(), &entry)
	if err != nil {
		logger.Error("Failed to join waitlist", zap.String("email", entry.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ListWaitlistHandler handles GET /waitlist.
func (h *AccessHandler) ListWaitlistHandler(c *gin.Context) {
	logger := utils.GetLogger()
	entries, err := h.Access.ListWaitlist(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list waitlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// InviteHandler handles POST /invitations.
func (h *AccessHandler) InviteHandler(c *gin.Context) {
	logger := utils.GetLogger()
	invitedBy := c.GetString("profileID")

	var req struct {
		Email string `json:"email" binding:"required"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	invitation, err := h.Access.Invite(c.Request.Context(), req.Email, req.Role, invitedBy)
	if err != nil {
		logger.Error("Failed to issue invitation", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitationHandler handles POST /invitations/accept.
func (h *AccessHandler) AcceptInvitationHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	invitation, err := h.Access.AcceptInvitation(c.Request.Context(), profileID)
	if err != nil {
		logger.Warn("Failed to accept invitation", zap.String("profile_id", profileID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invitation)
}
