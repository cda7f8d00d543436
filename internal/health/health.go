// Package health reports store connectivity over HTTP and the gRPC
// health protocol.
package health

import (
	"net/http"
	"time"

	"jobvibe/internal/database"

	"github.com/gin-gonic/gin"
)

type Store interface {
	State() string
}

type Handler struct {
	store Store
	now   func() time.Time
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// Check answers 200 while the store is connected and 503 otherwise. The
// body is not wrapped in the response envelope so supervisors can read
// it directly.
func (h *Handler) Check(c *gin.Context) {
	state := h.store.State()
	code, status := http.StatusOK, "ok"
	if state != database.StateConnected {
		code, status = http.StatusServiceUnavailable, "unavailable"
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": h.now().UTC().Format(time.RFC3339),
		"database":  state,
	})
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Check)
	r.HEAD("/health", h.Check)
}
