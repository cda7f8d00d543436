package middleware

import (
	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	errNoRole       = apperr.Unauthorized("Role not found in token")
	errInsufficient = apperr.Forbidden("Access denied: insufficient permissions")
)

// RequireRole ensures that the authenticated user has one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			response.Abort(c, errNoRole)
			return
		}
		if _, ok := allowed[role]; !ok {
			response.Abort(c, errInsufficient)
			return
		}
		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
