package location

import "jobvibe/internal/pkg/apperr"

var (
	ErrStateNotFound = apperr.NotFound("State not found")
	ErrCityNotFound  = apperr.NotFound("City not found")
	ErrCityExists    = apperr.Conflict("City already exists in this state")
)
