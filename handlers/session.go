package handlers

import (
	"errors"
	"net/http"

	"expertly/models"
	sessionService "expertly/services/session"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the session lifecycle: booking creation, chat
// permission checks, active listings, and expert completion.
type SessionHandler struct {
	Sessions sessionService.SessionService
}

// CreateBookingHandler handles POST /sessions. The authenticated profile is
// always the booking user.
func (h *SessionHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("profileID")

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.UserID = userID

	info, err := h.Sessions.CreateBooking(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to create booking",
			zap.String("user_id", userID),
			zap.String("expert_id", input.ExpertID),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, info)
}

// GetSessionHandler handles GET /sessions/id/:id. Only the booking's user or
// expert may read it.
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")
	bookingID := c.Param("id")

	booking, err := h.Sessions.GetSession(c.Request.Context(), bookingID, profileID)
	if err != nil {
		if errors.Is(err, sessionService.ErrNotSessionParty) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch session", zap.String("booking_id", bookingID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ChatPermissionHandler handles GET /sessions/chat-permission/:expertID.
func (h *SessionHandler) ChatPermissionHandler(c *gin.Context) {
	userID := c.GetString("profileID")
	expertID := c.Param("expertID")

	allowed := h.Sessions.CanUserChatWithExpert(c.Request.Context(), userID, expertID)
	c.JSON(http.StatusOK, gin.H{"can_chat": allowed})
}

// UserSessionsHandler handles GET /sessions/user.
func (h *SessionHandler) UserSessionsHandler(c *gin.Context) {
	userID := c.GetString("profileID")
	sessions := h.Sessions.UserActiveSessions(c.Request.Context(), userID)
	c.JSON(http.StatusOK, sessions)
}

// ExpertSessionsHandler handles GET /sessions/expert.
func (h *SessionHandler) ExpertSessionsHandler(c *gin.Context) {
	expertID := c.GetString("profileID")
	sessions := h.Sessions.ExpertActiveSessions(c.Request.Context(), expertID)
	c.JSON(http.StatusOK, sessions)
}

// CompleteSessionHandler handles POST /sessions/complete/:id.
func (h *SessionHandler) CompleteSessionHandler(c *gin.Context) {
	expertID := c.GetString("profileID")
	bookingID := c.Param("id")

	var req struct {
		ExpertNotes string `json:"expert_notes"`
	}
	// The notes body is optional.
	_ = c.ShouldBindJSON(&req)

	completed := h.Sessions.CompleteSession(c.Request.Context(), bookingID, expertID, req.ExpertNotes)
	if !completed {
		c.JSON(http.StatusOK, gin.H{"completed": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": true})
}
