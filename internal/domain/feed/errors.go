package feed

import "jobvibe/internal/pkg/apperr"

var (
	ErrFeedNotFound  = apperr.NotFound("Feed not found")
	ErrNotYetPosted  = apperr.Forbidden("Post at least one feed before reacting to others")
	ErrOwnFeed       = apperr.Forbidden("You cannot react to your own feed")
	ErrInvalidRating = apperr.Validation("ratingValue must be between 0 and 5")
	ErrInvalidStatus = apperr.Validation("Invalid status filter")
	ErrEmptyFeed     = apperr.Validation("A feed needs content or media")
	ErrInvalidRange  = apperr.Validation("minRating cannot exceed maxRating")
)
