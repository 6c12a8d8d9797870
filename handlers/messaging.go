package handlers

import (
	"errors"
	"net/http"

	messagingService "expertly/services/messaging"
	"expertly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessagingHandler exposes conversation listings and chat messaging.
type MessagingHandler struct {
	Messaging messagingService.MessagingService
}

// ListConversationsHandler handles GET /messages/conversations.
func (h *MessagingHandler) ListConversationsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")

	conversations, err := h.Messaging.ListConversations(c.Request.Context(), profileID)
	if err != nil {
		logger.Error("Failed to list conversations", zap.String("profile_id", profileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// ConversationWithExpertHandler handles GET /messages/with/:expertID. It
// returns the caller's existing conversation with the expert, or 404 when the
// pair has never talked.
func (h *MessagingHandler) ConversationWithExpertHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")
	expertID := c.Param("expertID")

	conversation, err := h.Messaging.ConversationWithExpert(c.Request.Context(), profileID, expertID)
	if err != nil {
		logger.Error("Failed to find conversation", zap.String("expert_id", expertID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conversation == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no conversation with this expert"})
		return
	}
	c.JSON(http.StatusOK, conversation)
}

// ListMessagesHandler handles GET /messages/conversations/:id.
func (h *MessagingHandler) ListMessagesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")
	conversationID := c.Param("id")

	messages, err := h.Messaging.ListMessages(c.Request.Context(), conversationID, profileID)
	if err != nil {
		if errors.Is(err, messagingService.ErrNotParticipant) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list messages", zap.String("conversation_id", conversationID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessageHandler handles POST /messages/conversations/:id.
func (h *MessagingHandler) SendMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	profileID := c.GetString("profileID")
	conversationID := c.Param("id")

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	message, err := h.Messaging.SendMessage(c.Request.Context(), conversationID, profileID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, messagingService.ErrChatClosed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, messagingService.ErrNotParticipant):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to send message", zap.String("conversation_id", conversationID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, message)
}
