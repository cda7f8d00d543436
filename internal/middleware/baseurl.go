package middleware

import (
	"jobvibe/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

const contextBaseURL = "base_url"

// BaseURL fixes the origin used to make stored paths absolute. An empty
// override means the request's own scheme and host.
func BaseURL(override string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if override != "" {
			c.Set(contextBaseURL, override)
		}
		c.Next()
	}
}

// PublicBase returns scheme://host for building absolute URLs in responses.
func PublicBase(c *gin.Context) string {
	if v := c.GetString(contextBaseURL); v != "" {
		return v
	}
	return utils.BaseURL(c.Request)
}
