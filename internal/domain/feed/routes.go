package feed

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	feedGroup := protected.Group("/feed")
	{
		feedGroup.POST("", h.List)
		feedGroup.GET("/explore", h.Explore)
		feedGroup.GET("/reacted-feeds", h.Reacted)
		feedGroup.POST("/post", h.Post)
		feedGroup.GET("/:feedId", h.Get)
		feedGroup.POST("/:feedId/reactions", h.React)
	}
}
