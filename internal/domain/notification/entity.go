package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Type represents notification type
type Type string

const (
	TypeNewFeed           Type = "new_feed"           // opposite role: someone posted
	TypeReaction          Type = "reaction"           // author: first reaction on a feed
	TypeApplication       Type = "application"        // job owner: new applicant
	TypeApplicationStatus Type = "application_status" // candidate: status changed
	TypeInterview         Type = "interview"          // candidate: interview scheduled
	TypeMessage           Type = "message"            // recipient: new direct message
	TypeJobStatus         Type = "job_status"         // author: job accepted or rejected
	TypeSystem            Type = "system"             // admin broadcast
)

// Notification is a persisted, per-recipient notice
type Notification struct {
	ID          string            `gorm:"type:varchar(36);primaryKey" json:"_id"`
	RecipientID string            `gorm:"type:varchar(36);not null;index:idx_notifications_recipient_read" json:"recipientId"`
	SenderID    string            `gorm:"type:varchar(36)" json:"senderId,omitempty"`
	Type        Type              `gorm:"type:varchar(32);not null" json:"type"`
	Title       string            `gorm:"not null" json:"title"`
	Body        string            `json:"body"`
	Data        datatypes.JSONMap `json:"data,omitempty"`
	IsRead      bool              `gorm:"not null;default:false;index:idx_notifications_recipient_read" json:"isRead"`
	ReadAt      *time.Time        `json:"readAt,omitempty"`
	CreatedAt   time.Time         `gorm:"index" json:"createdAt"`
}

func (n *Notification) BeforeCreate(*gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
