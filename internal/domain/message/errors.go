package message

import "jobvibe/internal/pkg/apperr"

var (
	ErrConversationNotFound = apperr.NotFound("Conversation not found")
	ErrMessageNotFound      = apperr.NotFound("Message not found")
	ErrNotParticipant       = apperr.Forbidden("You are not part of this conversation")
	ErrCannotMessageSelf    = apperr.Validation("You cannot message yourself")
	ErrRecipientInactive    = apperr.Forbidden("Recipient account is inactive")
	ErrBlocked              = apperr.Forbidden("You cannot message this user")
)
