package user

import "jobvibe/internal/pkg/apperr"

var (
	ErrNothingToUpdate = apperr.Validation("No profile fields to update")
	ErrInvalidRole     = apperr.Validation("Invalid role filter")
	ErrInvalidStatus   = apperr.Validation("Status must be active or inactive")
	ErrNoImage         = apperr.Validation("No image uploaded")
	ErrSelfDeactivate  = apperr.Forbidden("You cannot deactivate your own account")
)
