package messaging

import (
	"context"
	"errors"
	"fmt"

	conversationRepo "expertly/database/repository/conversation"
	"expertly/models"
	"expertly/services/notification"
	"expertly/services/session"
	"expertly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrChatClosed signals a logical denial: the conversation exists but chat is
// not currently permitted between its parties.
var ErrChatClosed = errors.New("chat is not available for this conversation")

// ErrNotParticipant signals that the caller is not a party to the conversation.
var ErrNotParticipant = errors.New("profile is not a participant in this conversation")

// MessagingService defines business logic for conversations and messages.
type MessagingService interface {
	// ListConversations returns all conversations a profile takes part in.
	ListConversations(ctx context.Context, profileID string) ([]models.Conversation, error)
	// ConversationWithExpert returns the user's most recent conversation with
	// an expert, or (nil, nil) when the pair has never had one.
	ConversationWithExpert(ctx context.Context, userID, expertID string) (*models.Conversation, error)
	// ListMessages returns a conversation's messages for a participant.
	ListMessages(ctx context.Context, conversationID, profileID string) ([]models.Message, error)
	// SendMessage appends a message to a conversation, provided the sender is
	// a participant and chat between the parties is currently permitted.
	SendMessage(ctx context.Context, conversationID, senderID, content string) (*models.Message, error)
}

// DefaultMessagingService is the production implementation.
type DefaultMessagingService struct {
	Conversations conversationRepo.ConversationRepository
	Sessions      session.SessionService
	Notifications notification.NotificationService
}

// ListConversations returns all conversations a profile takes part in, most
// recently updated first.
func (s *DefaultMessagingService) ListConversations(ctx context.Context, profileID string) ([]models.Conversation, error) {
	conversations, err := s.Conversations.ListConversationsByParticipant(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

// ConversationWithExpert returns the user's most recent conversation with an
// expert. Clients use it to reopen an existing chat thread from the expert's
// profile page; a nil conversation means the pair has never talked.
func (s *DefaultMessagingService) ConversationWithExpert(ctx context.Context, userID, expertID string) (*models.Conversation, error) {
	conversation, err := s.Conversations.FindConversation(ctx, userID, expertID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return conversation, nil
}

// ListMessages returns a conversation's messages in creation order, after
// checking the caller is a participant.
func (s *DefaultMessagingService) ListMessages(ctx context.Context, conversationID, profileID string) ([]models.Message, error) {
	conversation, err := s.Conversations.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if conversation.UserID != profileID && conversation.ExpertID != profileID {
		return nil, ErrNotParticipant
	}

	messages, err := s.Conversations.ListMessages(ctx, conversationID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends a message to a conversation. The sender must be a
// participant and the pair must currently hold chat permission; a closed
// session denies the send as ErrChatClosed rather than an internal error.
// The counterpart is notified with a push, best-effort.
func (s *DefaultMessagingService) SendMessage(ctx context.Context, conversationID, senderID, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}

	conversation, err := s.Conversations.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}
	if conversation.UserID != senderID && conversation.ExpertID != senderID {
		return nil, ErrNotParticipant
	}

	if !s.Sessions.CanUserChatWithExpert(ctx, conversation.UserID, conversation.ExpertID) {
		return nil, ErrChatClosed
	}

	message := &models.Message{
		ID:             uuid.New().String(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		MessageType:    models.MessageTypeText,
	}
	if err := s.Conversations.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	if err := s.Conversations.TouchConversation(ctx, conversationID); err != nil {
		utils.GetLogger().Warn("Failed to touch conversation",
			zap.String("conversationID", conversationID), zap.Error(err))
	}

	if s.Notifications != nil {
		counterpartID := conversation.UserID
		if senderID == conversation.UserID {
			counterpartID = conversation.ExpertID
		}
		go func() {
			err := s.Notifications.SendPushNotification(context.Background(), counterpartID,
				"New message", content, map[string]string{
					"type":           "message",
					"conversationId": conversationID,
				})
			if err != nil {
				utils.GetLogger().Debug("Failed to push message notification",
					zap.String("counterpartID", counterpartID), zap.Error(err))
			}
		}()
	}

	return message, nil
}
