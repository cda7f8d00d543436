package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer serves the hub with identity taken from query params.
func startServer(t *testing.T, hub *Hub) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := NewHandler(hub, nil)
	r.GET("/ws", func(c *gin.Context) {
		c.Set("user_id", c.Query("uid"))
		c.Set("role", c.Query("role"))
		h.Connect(c)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url, uid, role string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url+"?uid="+uid+"&role="+role, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_SendToUser(t *testing.T) {
	hub := NewHub()
	url := startServer(t, hub)

	alice := dial(t, url, "alice", "candidate")
	require.Eventually(t, func() bool { return hub.Online("alice") }, time.Second, 5*time.Millisecond)

	assert.True(t, hub.SendToUser("alice", Event{Type: EventNotification, Payload: "hi"}))
	assert.False(t, hub.SendToUser("bob", Event{Type: EventNotification}))

	ev := readEvent(t, alice)
	assert.Equal(t, EventNotification, ev.Type)
	assert.Equal(t, "hi", ev.Payload)
}

func TestHub_BroadcastToRole(t *testing.T) {
	hub := NewHub()
	url := startServer(t, hub)

	cand := dial(t, url, "c1", "candidate")
	_ = dial(t, url, "e1", "employer")
	require.Eventually(t, func() bool { return hub.Online("c1") && hub.Online("e1") }, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1, hub.BroadcastToRole("candidate", Event{Type: EventNotification}))
	assert.Equal(t, EventNotification, readEvent(t, cand).Type)
	assert.Equal(t, 2, hub.BroadcastToRole("", Event{Type: EventNotification}))
}

func TestHub_TypingIsForwarded(t *testing.T) {
	hub := NewHub()
	url := startServer(t, hub)

	alice := dial(t, url, "alice", "candidate")
	bob := dial(t, url, "bob", "employer")
	require.Eventually(t, func() bool { return hub.Online("alice") && hub.Online("bob") }, time.Second, 5*time.Millisecond)

	require.NoError(t, alice.WriteJSON(map[string]string{"type": EventTyping, "recipientId": "bob"}))

	ev := readEvent(t, bob)
	assert.Equal(t, EventTyping, ev.Type)
	assert.Equal(t, map[string]any{"userId": "alice"}, ev.Payload)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub()
	url := startServer(t, hub)

	conn := dial(t, url, "alice", "candidate")
	require.Eventually(t, func() bool { return hub.Online("alice") }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return !hub.Online("alice") }, 2*time.Second, 10*time.Millisecond)
}
