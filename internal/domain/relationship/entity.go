// Package relationship lets users block each other. A block in either
// direction stops direct messages between the pair.
package relationship

import (
	"time"

	"jobvibe/internal/domain/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Block struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	BlockerID string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_blocks_pair" json:"blockerId"`
	BlockedID string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_blocks_pair;index" json:"blockedId"`
	Blocked   *auth.User `gorm:"foreignKey:BlockedID" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (Block) TableName() string { return "user_blocks" }

func (b *Block) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type BlockRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type BlockedView struct {
	User      auth.Summary `json:"user"`
	BlockedAt time.Time    `json:"blockedAt"`
}
