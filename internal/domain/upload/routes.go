package upload

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	files := protected.Group("/files")
	{
		files.POST("", h.UploadMany)
		files.POST("/image", h.UploadImage)
		files.POST("/video", h.UploadVideo)
		files.POST("/document", h.UploadDocument)
		files.DELETE("/:fileId", h.Delete)
		files.GET("/:fileId/url", h.URL)
	}
}
