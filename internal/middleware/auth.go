package middleware

import (
	"strings"

	"jobvibe/internal/pkg/apperr"
	"jobvibe/internal/pkg/jwt"
	"jobvibe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

var (
	errMissingToken = apperr.Unauthorized("Authorization token is required")
	errInvalidToken = apperr.Unauthorized("Invalid or expired token")
)

// JWTAuth resolves the principal from a Bearer header, or from the token
// query parameter for websocket upgrades.
func JWTAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			raw = c.Query("token")
		}
		if raw == "" {
			response.Abort(c, errMissingToken)
			return
		}

		claims, err := tokens.ValidateToken(raw)
		if err != nil {
			response.Abort(c, errInvalidToken)
			return
		}

		c.Set(ContextUserID, claims.UserID())
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the authenticated user id, or "" outside JWTAuth.
func UserID(c *gin.Context) string { return c.GetString(ContextUserID) }

func Role(c *gin.Context) string { return c.GetString(ContextRole) }

func IsAdmin(c *gin.Context) bool { return Role(c) == "admin" }
