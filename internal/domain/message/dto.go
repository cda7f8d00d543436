package message

import (
	"time"

	"jobvibe/internal/domain/auth"
)

type SendRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	Body        string `json:"body" validate:"required,max=5000"`
}

// ConversationView is one row of the caller's inbox.
type ConversationView struct {
	ID            string        `json:"_id"`
	Participant   *auth.Summary `json:"participant"`
	LastMessage   string        `json:"lastMessage"`
	LastMessageAt *time.Time    `json:"lastMessageAt"`
	UnreadCount   int64         `json:"unreadCount"`
}

type readReceipt struct {
	MessageID      string    `json:"messageId"`
	ConversationID string    `json:"conversationId"`
	ReadAt         time.Time `json:"readAt"`
}
