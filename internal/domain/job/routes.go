package job

import (
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the job admin API at /jobs and /feeds.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, maxBody int64) {
	for _, prefix := range []string{"/jobs", "/feeds"} {
		jobs := protected.Group(prefix, middleware.AdminOnly())
		jobs.GET("", h.List)
		jobs.GET("/active", h.Active)
		jobs.GET("/draft", h.Draft)
		jobs.GET("/search", h.Search)
		jobs.GET("/:id", h.Get)
		jobs.POST("", upload.MaxBody(maxBody), h.Create)
		jobs.PUT("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)
		jobs.PATCH("/:id/publish", h.Publish)
		jobs.PATCH("/:id/unpublish", h.Unpublish)
		jobs.PATCH("/:id/accept", h.Accept)
		jobs.PATCH("/:id/reject", h.Reject)
		jobs.POST("/:id/videos", upload.MaxBody(maxBody), h.UploadVideos)
	}
}
