package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobvibe/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/x", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestSuccess(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		OK(c, "Fetched", gin.H{"id": "1"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Status)
	assert.Equal(t, "Fetched", env.Message)
	assert.Equal(t, map[string]any{"id": "1"}, env.Data)
}

func TestFail_MapsKindToStatus(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Fail(c, apperr.Forbidden("You cannot react to your own feed"))
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "You cannot react to your own feed", env.Message)
}

func TestFail_InternalHidesCause(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		Fail(c, errors.New("pq: relation \"feeds\" does not exist"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestValidationFailed(t *testing.T) {
	w, env := perform(t, func(c *gin.Context) {
		ValidationFailed(c, map[string]string{"Email": "required"})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, map[string]any{"errors": map[string]any{"Email": "required"}}, env.Data)
}
