package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobvibe/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(t *testing.T, svc *jwt.Service, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()

	router := gin.New()
	router.Use(JWTAuth(svc))
	handlers := append(extra, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": UserID(c),
			"role":    Role(c),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := jwt.New("test-secret-123", time.Hour)
	token, err := svc.GenerateToken("user-42", "candidate")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-42","role":"candidate"}`, w.Body.String())
}

func TestJWTAuth_QueryToken(t *testing.T) {
	svc := jwt.New("test-secret-123", time.Hour)
	token, err := svc.GenerateToken("user-7", "employer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	protectedRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-7")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	svc := jwt.New("wrong-secret", time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	protectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"Invalid or expired token","data":{}}`, w.Body.String())
}

func TestJWTAuth_NoToken(t *testing.T) {
	svc := jwt.New("secret", time.Hour)

	w := httptest.NewRecorder()
	protectedRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization token is required")
}

func TestRequireRole(t *testing.T) {
	svc := jwt.New("secret", time.Hour)
	router := protectedRouter(t, svc, AdminOnly())

	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"employer", http.StatusForbidden},
		{"candidate", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token, err := svc.GenerateToken("u1", tt.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorLogger())
	router.GET("/boom", func(c *gin.Context) {
		panic("secret internal state")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret internal state")
	assert.Contains(t, w.Body.String(), `"status":false`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"https://app.jobvibe.test"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.jobvibe.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.jobvibe.test", w.Header().Get("Access-Control-Allow-Origin"))
}
