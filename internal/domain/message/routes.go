package message

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	messages := protected.Group("/messages")
	{
		messages.GET("/conversations", h.Conversations)
		messages.GET("/unread-count", h.UnreadCount)
		messages.POST("", h.Send)
		messages.POST("/send", h.Send)
		messages.GET("/:id", h.Messages)
		messages.PATCH("/:id/read", h.MarkRead)
	}
}
