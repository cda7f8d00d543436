package admin

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("/admin", middleware.AdminOnly())
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/users", h.Users)
		admin.GET("/jobs", h.Jobs)
		admin.GET("/applications", h.Applications)
		admin.GET("/activities", h.Activities)
		admin.GET("/system-health", h.SystemHealth)
	}
}
