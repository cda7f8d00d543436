package application

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	apps := protected.Group("/applications")
	{
		apps.POST("", h.Apply)
		apps.GET("/mine", h.Mine)
		apps.GET("/:id", h.Get)
		apps.GET("/:id/match-score", h.MatchScore)
		apps.DELETE("/:id", h.Delete)

		admin := apps.Group("", middleware.AdminOnly())
		admin.GET("/matches", h.Matches)
		admin.GET("/job/:jobId", h.ByJob)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}
