package resume

import "jobvibe/internal/pkg/apperr"

var (
	ErrResumeNotFound  = apperr.NotFound("Resume not found")
	ErrNotOwner        = apperr.Forbidden("Only the owner can change this resume")
	ErrNothingToUpdate = apperr.Validation("No resume fields to update")
	ErrNoFile          = apperr.Validation("No file uploaded")
	ErrNoDocument      = apperr.NotFound("This resume has no document")
)
