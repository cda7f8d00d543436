package user

import (
	"jobvibe/internal/domain/upload"
	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, maxBody int64) {
	users := protected.Group("/users")
	{
		users.GET("/profile", h.Profile)
		users.PUT("/profile", h.UpdateProfile)
		users.POST("/update", h.UpdateProfile)
		users.POST("/avatar", upload.MaxBody(maxBody), h.UploadAvatar)
		users.POST("/upload", upload.MaxBody(maxBody), h.Upload)
		users.GET("/:id", h.Get)
		users.GET("/:id/post", h.Posts)
	}

	admin := users.Group("", middleware.AdminOnly())
	{
		admin.GET("", h.List)
		admin.GET("/candidates", h.Candidates)
		admin.GET("/hr-managers", h.Employers)
		admin.GET("/recruiters", h.Employers)
		admin.PATCH("/:id/status", h.SetStatus)
	}
}
