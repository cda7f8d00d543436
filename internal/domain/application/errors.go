package application

import "jobvibe/internal/pkg/apperr"

var (
	ErrApplicationNotFound = apperr.NotFound("Application not found")
	ErrAlreadyApplied      = apperr.Conflict("You have already applied to this job")
	ErrNotCandidate        = apperr.Forbidden("Only candidates can apply")
	ErrNotAllowed          = apperr.Forbidden("You cannot access this application")
	ErrInvalidStatus       = apperr.Validation("Invalid application status")
	ErrInvalidScore        = apperr.Validation("matchScore must be between 0 and 100")
)
