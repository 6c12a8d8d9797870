package models

import "time"

// Message types.
const (
	MessageTypeText   = "text"
	MessageTypeSystem = "system"
)

// Message is a single message inside a conversation.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversation_id"`
	SenderID       string    `bson:"sender_id" json:"sender_id"`
	Content        string    `bson:"content" json:"content"`
	MessageType    string    `bson:"message_type" json:"message_type"`
	IsEdited       bool      `bson:"is_edited" json:"is_edited"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
