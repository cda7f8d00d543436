package notification

import "jobvibe/internal/pkg/apperr"

var (
	ErrNotificationNotFound = apperr.NotFound("Notification not found")
	ErrNoTarget             = apperr.Validation("recipientId or audience is required")
)
