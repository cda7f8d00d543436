package interview

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
)

type Mode string

const (
	ModeOnline Mode = "online"
	ModeOnsite Mode = "onsite"
	ModePhone  Mode = "phone"
)

// Interview belongs to an application. FeedID and CandidateID are copied
// from it so listings and job deletion need no join.
type Interview struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"_id"`
	ApplicationID   string    `gorm:"type:varchar(36);not null;index" json:"applicationId"`
	FeedID          string    `gorm:"type:varchar(36);not null;index" json:"feedId"`
	CandidateID     string    `gorm:"type:varchar(36);not null;index" json:"candidateId"`
	ScheduledBy     string    `gorm:"type:varchar(36)" json:"scheduledBy"`
	ScheduledAt     time.Time `gorm:"not null;index" json:"scheduledAt"`
	DurationMinutes int       `gorm:"not null;default:30" json:"durationMinutes"`
	Mode            Mode      `gorm:"size:20" json:"mode"`
	Location        string    `gorm:"size:255" json:"location,omitempty"`
	MeetingLink     string    `gorm:"size:500" json:"meetingLink,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	Status          Status    `gorm:"size:20;not null;index" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (i *Interview) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Closed interviews cannot be rescheduled or cancelled.
func (i *Interview) Closed() bool {
	return i.Status == StatusCancelled || i.Status == StatusCompleted
}
