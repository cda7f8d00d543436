package application

import (
	"strings"
	"time"

	"jobvibe/internal/domain/auth"
	"jobvibe/internal/domain/feed"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusApplied     Status = "applied"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

var Statuses = []Status{
	StatusPending,
	StatusApplied,
	StatusReviewed,
	StatusShortlisted,
	StatusInterview,
	StatusHired,
	StatusRejected,
	StatusWithdrawn,
}

func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Application is a candidate's interest in a feed. Only rows with
// IsApplied set count as submitted.
type Application struct {
	ID                 string     `gorm:"type:varchar(36);primaryKey" json:"_id"`
	UserID             string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_user_feed" json:"userId"`
	FeedID             string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_applications_user_feed;index" json:"feedId"`
	IsApplied          bool       `gorm:"column:is_applied;not null;index" json:"is_applied"`
	Status             Status     `gorm:"size:20;index" json:"status"`
	MatchScore         float64    `gorm:"not null;default:0" json:"matchScore"`
	InterviewScheduled bool       `gorm:"not null;default:false" json:"interviewScheduled"`
	CoverLetter        string     `gorm:"type:text" json:"coverLetter,omitempty"`
	User               *auth.User `gorm:"foreignKey:UserID" json:"-"`
	Feed               *feed.Feed `gorm:"foreignKey:FeedID" json:"-"`
	CreatedAt          time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func (a *Application) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// EffectiveStatus falls back to applied/pending when no status was set.
func (a *Application) EffectiveStatus() Status {
	if a.Status != "" {
		return a.Status
	}
	if a.IsApplied {
		return StatusApplied
	}
	return StatusPending
}
