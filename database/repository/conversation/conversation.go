package conversationRepo

import (
	"context"

	"expertly/models"
)

// ConversationRepository defines methods for conversation and message data access.
type ConversationRepository interface {
	// CreateConversation persists a new conversation record.
	CreateConversation(ctx context.Context, conversation *models.Conversation) error
	// GetConversationByID retrieves a conversation by its unique ID.
	GetConversationByID(ctx context.Context, id string) (*models.Conversation, error)
	// FindConversation returns the most recent conversation between the user
	// and the expert, or (nil, nil) when none exists.
	FindConversation(ctx context.Context, userID, expertID string) (*models.Conversation, error)
	// ListConversationsByParticipant returns all conversations a profile takes
	// part in, most recently updated first.
	ListConversationsByParticipant(ctx context.Context, profileID string) ([]models.Conversation, error)
	// TouchConversation bumps a conversation's updated_at timestamp.
	TouchConversation(ctx context.Context, id string) error
	// CreateMessage persists a new message record.
	CreateMessage(ctx context.Context, message *models.Message) error
	// ListMessages returns a conversation's messages in creation order.
	ListMessages(ctx context.Context, conversationID string, limit int64) ([]models.Message, error)
	// CountConversationsForBooking reports how many conversations reference a
	// booking.
	CountConversationsForBooking(ctx context.Context, bookingID string) (int64, error)
}
