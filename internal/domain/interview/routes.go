package interview

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	interviews := protected.Group("/interviews")
	{
		interviews.GET("", h.List)
		interviews.GET("/:id", h.Get)

		admin := interviews.Group("", middleware.AdminOnly())
		admin.POST("", h.Schedule)
		admin.PUT("/:id", h.Reschedule)
		admin.PATCH("/:id/cancel", h.Cancel)
		admin.PATCH("/:id/complete", h.Complete)
	}
}
