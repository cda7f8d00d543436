package interview

import "time"

type ScheduleRequest struct {
	ApplicationID   string    `json:"applicationId" validate:"required"`
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,min=5,max=480"`
	Mode            Mode      `json:"mode" validate:"omitempty,oneof=online onsite phone"`
	Location        string    `json:"location" validate:"max=255"`
	MeetingLink     string    `json:"meetingLink" validate:"omitempty,url,max=500"`
	Notes           string    `json:"notes" validate:"max=5000"`
}

type RescheduleRequest struct {
	ScheduledAt     time.Time `json:"scheduledAt" validate:"required"`
	DurationMinutes int       `json:"durationMinutes" validate:"omitempty,min=5,max=480"`
	Location        *string   `json:"location" validate:"omitempty,max=255"`
	MeetingLink     *string   `json:"meetingLink" validate:"omitempty,max=500"`
	Notes           *string   `json:"notes" validate:"omitempty,max=5000"`
}
