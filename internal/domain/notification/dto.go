package notification

import "jobvibe/internal/pkg/paginate"

type SendRequest struct {
	RecipientID string         `json:"recipientId"`
	Audience    string         `json:"audience" validate:"omitempty,oneof=candidate employer admin"`
	Title       string         `json:"title" validate:"required,max=200"`
	Body        string         `json:"body" validate:"max=2000"`
	Data        map[string]any `json:"data"`
}

type ListResponse struct {
	*paginate.Result[Notification]
	UnreadCount int64 `json:"unreadCount"`
}
