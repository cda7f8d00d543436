package resume

import (
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Resume struct {
	ID          string            `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserID      string            `gorm:"type:varchar(36);not null;index" json:"userId"`
	Title       string            `gorm:"size:200;not null" json:"title"`
	Summary     string            `gorm:"type:text" json:"summary,omitempty"`
	Skills      utils.StringList  `json:"skills"`
	Experience  string            `gorm:"size:60" json:"experience,omitempty"`
	Location    string            `gorm:"size:120" json:"location,omitempty"`
	Details     datatypes.JSONMap `json:"details,omitempty"`
	VideoURL    string            `json:"videoUrl,omitempty"`
	DocumentURL string            `json:"documentUrl,omitempty"`
	User        *auth.User        `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (r *Resume) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
