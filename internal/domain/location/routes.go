package location

import (
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes mounts the read-only lookups.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/states", h.States)
	r.GET("/states/:stateId/cities", h.CitiesByState)
	r.GET("/cities", h.Cities)
	r.GET("/job-titles", h.JobTitles)
}

func (h *Handler) RegisterAdminRoutes(protected *gin.RouterGroup) {
	admin := protected.Group("", middleware.AdminOnly())
	admin.POST("/states/:stateId/cities", h.CreateCity)
	admin.PUT("/cities/:cityId", h.UpdateCity)
	admin.DELETE("/cities/:cityId", h.DeleteCity)
}
