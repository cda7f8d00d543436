package feed

import (
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the moderation/publication state of a feed. Any status may
// follow any other.
type Status string

const (
	StatusDraft    Status = ""
	StatusOpen     Status = "open"
	StatusPaused   Status = "paused"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusOpen, StatusPaused, StatusApproved, StatusRejected:
		return st, true
	}
	return "", false
}

type Feed struct {
	ID                string           `gorm:"type:varchar(36);primaryKey" json:"_id"`
	AuthorID          string           `gorm:"type:varchar(36);index;not null" json:"authorId"`
	AuthorRole        auth.Role        `gorm:"size:20;index" json:"authorRole"`
	Title             string           `gorm:"size:200" json:"title,omitempty"`
	Content           string           `gorm:"type:text" json:"content"`
	Media             utils.StringList `json:"media"`
	JobTitle          utils.StringList `json:"job_title"`
	JobType           string           `gorm:"size:50;index" json:"job_type,omitempty"`
	WorkPlaceName     string           `gorm:"size:200" json:"work_place_name,omitempty"`
	CompanyName       string           `gorm:"size:200" json:"company_name,omitempty"`
	Cities            utils.StringList `json:"cities"`
	States            utils.StringList `json:"states"`
	Skills            utils.StringList `json:"skills"`
	Source            string           `gorm:"size:50;index" json:"source,omitempty"`
	NoticePeriod      string           `gorm:"size:50" json:"notice_period,omitempty"`
	IsImmediateJoiner bool             `json:"is_immediate_joiner"`
	Status            Status           `gorm:"size:20;index" json:"status"`
	NoOfReactions     int64            `gorm:"not null;default:0" json:"noOfReactions"`
	Author            *auth.User       `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt         time.Time        `gorm:"index" json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func (f *Feed) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Reaction is a user's rating of someone else's feed. (UserID, FeedID) is unique.
type Reaction struct {
	ID          string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserID      string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_reactions_user_feed" json:"userId"`
	FeedID      string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_reactions_user_feed;index" json:"feedId"`
	RatingValue float64    `gorm:"not null;default:0" json:"ratingValue"`
	Type        string     `gorm:"size:30" json:"type,omitempty"`
	User        *auth.User `gorm:"foreignKey:UserID" json:"-"`
	Feed        *Feed      `gorm:"foreignKey:FeedID" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (r *Reaction) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
