package upload

import "jobvibe/internal/pkg/apperr"

var (
	ErrFileNotFound    = apperr.NotFound("File not found")
	ErrNotOwner        = apperr.Forbidden("You do not own this file")
	ErrFileTooLarge    = apperr.Validation("File exceeds maximum allowed size")
	ErrInvalidMimeType = apperr.Validation("File type is not allowed")
	ErrEmptyFile       = apperr.Validation("File is empty")
	ErrNoFiles         = apperr.Validation("No file uploaded")
	ErrTooManyFiles    = apperr.Validation("Too many files")
)
