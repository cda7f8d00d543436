package realtime

import (
	"log/slog"
	"net/http"

	"jobvibe/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler accepts upgrades from allowedOrigins; "*" or an empty list
// accepts any origin.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	any := len(allowedOrigins) == 0
	for _, o := range allowedOrigins {
		if o == "*" {
			any = true
		}
		allowed[o] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return any || origin == "" || allowed[origin]
			},
		},
	}
}

// Connect upgrades an authenticated request. The token arrives as a query
// parameter since browsers cannot set headers on websocket requests.
//
// Endpoint: GET /ws?token=JWT
func (h *Handler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	h.hub.Serve(conn, middleware.UserID(c), middleware.Role(c))
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/ws", h.Connect)
}
