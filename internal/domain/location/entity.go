package location

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type State struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Name      string    `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"size:10" json:"code,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *State) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// City names are unique within a state.
type City struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	StateID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_cities_state_name" json:"state"`
	Name      string    `gorm:"size:120;not null;uniqueIndex:idx_cities_state_name" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *City) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type JobTitle struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	Name      string    `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"size:60" json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (j *JobTitle) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
