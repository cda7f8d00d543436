package message

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is the direct thread between two users. UserA sorts
// before UserB so each pair has exactly one row.
type Conversation struct {
	ID            string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserA         string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_conversations_pair" json:"-"`
	UserB         string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_conversations_pair;index" json:"-"`
	LastMessage   string     `gorm:"type:text" json:"lastMessage"`
	LastMessageAt *time.Time `gorm:"index" json:"lastMessageAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func (c *Conversation) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Other returns the participant that is not userID.
func (c *Conversation) Other(userID string) string {
	if c.UserA == userID {
		return c.UserB
	}
	return c.UserA
}

func (c *Conversation) Has(userID string) bool {
	return c.UserA == userID || c.UserB == userID
}

func pair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}

type Message struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	ConversationID string     `gorm:"type:varchar(36);not null;index" json:"conversationId"`
	SenderID       string     `gorm:"type:varchar(36);not null" json:"senderId"`
	RecipientID    string     `gorm:"type:varchar(36);not null;index" json:"recipientId"`
	Body           string     `gorm:"type:text;not null" json:"body"`
	IsRead         bool       `gorm:"not null;default:false" json:"isRead"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	CreatedAt      time.Time  `gorm:"index" json:"createdAt"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
