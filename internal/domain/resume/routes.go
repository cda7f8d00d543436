package resume

import (
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, maxBody int64) {
	resumes := protected.Group("/resumes")
	{
		resumes.GET("", middleware.AdminOnly(), h.List)
		resumes.GET("/search", middleware.AdminOnly(), h.List)
		resumes.GET("/user/:userId", h.ByUser)
		resumes.GET("/:id", h.Get)
		resumes.POST("", h.Create)
		resumes.PUT("/:id", h.Update)
		resumes.DELETE("/:id", h.Delete)
		resumes.POST("/:id/video", upload.MaxBody(maxBody), h.UploadVideo)
		resumes.POST("/:id/document", upload.MaxBody(maxBody), h.UploadDocument)
		resumes.GET("/:id/download", h.Download)
	}
}
