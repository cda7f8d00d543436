package report

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	reports := protected.Group("/reports")
	reports.Use(middleware.AdminOnly())
	{
		reports.GET("/summary", h.Summary)
		reports.POST("/users", h.Generate(TypeUsers))
		reports.POST("/jobs", h.Generate(TypeJobs))
		reports.POST("/applications", h.Generate(TypeApplications))
		reports.GET("/export/:type", h.Export)
	}
}
