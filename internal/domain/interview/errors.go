package interview

import "jobvibe/internal/pkg/apperr"

var (
	ErrInterviewNotFound = apperr.NotFound("Interview not found")
	ErrNotAllowed        = apperr.Forbidden("You cannot access this interview")
	ErrInPast            = apperr.Validation("scheduledAt must be in the future")
	ErrClosed            = apperr.Conflict("Interview is already closed")
	ErrNotApplied        = apperr.Validation("Application was not submitted")
)
