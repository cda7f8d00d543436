package job

import "jobvibe/internal/pkg/apperr"

var (
	ErrJobNotFound   = apperr.NotFound("Job not found")
	ErrNothingToEdit = apperr.Validation("No fields to update")
	ErrNoVideo       = apperr.Validation("No video file uploaded")
	ErrInvalidMedia  = apperr.Validation("Media must reference uploaded files")
)
