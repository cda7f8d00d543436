package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 64 * 1024
	sendBuffer = 256
)

// Event is a real-time message pushed to clients
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventNotification = "notification"
	EventMessage      = "message"
	EventMessageRead  = "message_read"
	EventTyping       = "typing"
)

type connection struct {
	userID string
	role   string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks live websocket connections. A user may hold several.
type Hub struct {
	mu    sync.RWMutex
	users map[string]map[*connection]struct{}
	log   *slog.Logger
}

func NewHub() *Hub {
	return &Hub{
		users: make(map[string]map[*connection]struct{}),
		log:   slog.Default().With("component", "realtime"),
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.users[c.userID]
	if !ok {
		set = make(map[*connection]struct{})
		h.users[c.userID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.users[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; ok {
		delete(set, c)
		close(c.send)
	}
	if len(set) == 0 {
		delete(h.users, c.userID)
	}
}

func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID]) > 0
}

// SendToUser delivers to every connection of userID. It reports whether
// at least one connection accepted the event.
func (h *Hub) SendToUser(userID string, event Event) bool {
	data, err := json.Marshal(event)
	if err != nil {
		return false
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := false
	for c := range h.users[userID] {
		if enqueue(c, data) {
			delivered = true
		}
	}
	return delivered
}

// BroadcastToRole delivers to every connection whose user has role.
// An empty role reaches everyone.
func (h *Hub) BroadcastToRole(role string, event Event) int {
	data, err := json.Marshal(event)
	if err != nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.users {
		for c := range set {
			if (role == "" || c.role == role) && enqueue(c, data) {
				n++
			}
		}
	}
	return n
}

func enqueue(c *connection, data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		// client too slow, drop
		return false
	}
}

// Serve registers conn and pumps it until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn, userID, role string) {
	c := &connection{
		userID: userID,
		role:   role,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
	h.register(c)
	h.log.Debug("client connected", "user_id", userID)

	go h.writePump(c)
	h.readPump(c)
}

type inbound struct {
	Type        string `json:"type"`
	RecipientID string `json:"recipientId"`
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		h.log.Debug("client disconnected", "user_id", c.userID)
	}()

	c.conn.SetReadLimit(maxMsgSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var in inbound
		if err := json.Unmarshal(msg, &in); err != nil {
			continue
		}
		if in.Type == EventTyping && in.RecipientID != "" {
			h.SendToUser(in.RecipientID, Event{
				Type:    EventTyping,
				Payload: map[string]string{"userId": c.userID},
			})
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
