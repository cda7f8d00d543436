package relationship

import "jobvibe/internal/pkg/apperr"

var (
	ErrAlreadyBlocked  = apperr.Conflict("User is already blocked")
	ErrNotBlocked      = apperr.NotFound("User is not blocked")
	ErrCannotBlockSelf = apperr.Validation("You cannot block yourself")
)
