package notification

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	notifGroup := protected.Group("/notifications")
	{
		notifGroup.GET("", h.List)
		notifGroup.GET("/unread-count", h.UnreadCount)
		notifGroup.PATCH("/mark-all-read", h.MarkAllRead)
		notifGroup.PATCH("/:id/read", h.MarkRead)
		notifGroup.DELETE("/:id", h.Delete)
		notifGroup.POST("", middleware.AdminOnly(), h.Send)
	}
}
