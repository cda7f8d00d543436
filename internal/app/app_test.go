package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobvibe/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:                      "test",
		DatabaseURL:                 "file:" + t.Name() + "?mode=memory&cache=shared",
		DBRetryInterval:             time.Second,
		JWTSecret:                   "test-secret",
		JWTTTL:                      time.Hour,
		CacheTTL:                    time.Minute,
		UploadDir:                   t.TempDir(),
		MaxUploadBytes:              10 << 20,
		CORSAllowedOrigins:          []string{"*"},
		SweepSchedule:               "@every 1h",
		OrphanGrace:                 time.Hour,
		NotificationRetention:       24 * time.Hour,
		NotificationCleanupSchedule: "@daily",
	}
	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func do(t *testing.T, a *App, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.Engine.ServeHTTP(w, req)
	return w
}

func TestHealthFollowsStore(t *testing.T) {
	a := newApp(t)

	w := do(t, a, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disconnected"`)

	require.NoError(t, a.Store.Connect(context.Background()))

	w = do(t, a, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)
}

func TestRoutes(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.Store.Connect(context.Background()))

	w := do(t, a, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Cara", "email": "cara@x.test", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Status)
	token := env.Data.Token
	require.NotEmpty(t, token)

	assert.Equal(t, http.StatusOK, do(t, a, http.MethodGet, "/api/v1/auth/me", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, a, http.MethodGet, "/api/v1/users/profile", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, a, http.MethodGet, "/api/v1/users/profile", token, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, a, http.MethodGet, "/api/v1/states", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, a, http.MethodGet, "/api/settings", token, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, a, http.MethodGet, "/api/v1/messages/unread-count", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, do(t, a, http.MethodGet, "/api/v1/admin/dashboard", token, nil).Code)
	assert.Equal(t, http.StatusForbidden, do(t, a, http.MethodGet, "/api/reports/summary", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, a, http.MethodGet, "/api/v1/nowhere", token, nil).Code)
}

func TestMaintenance(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.Store.Connect(context.Background()))

	s, err := a.Maintenance()
	require.NoError(t, err)
	assert.NoError(t, s.RunAll(context.Background()))
}
