package auth

import "jobvibe/internal/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
	ErrEmailAlreadyExists = apperr.Conflict("Email is already registered")
	ErrUserNotFound       = apperr.NotFound("User not found")
	ErrAccountLocked      = apperr.Forbidden("Account is temporarily locked, try again later")
	ErrAccountInactive    = apperr.Forbidden("Account is inactive")
	ErrWeakPassword       = apperr.Validation("Password must be at least 6 characters")
	ErrInvalidRole        = apperr.Validation("Role must be candidate or employer")
	ErrWrongPassword      = apperr.Validation("Current password is incorrect")
)
