package health

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobvibe/internal/database"
	"jobvibe/internal/database/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type fakeStore string

func (s fakeStore) State() string { return string(s) }

func TestCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		state  string
		code   int
		status string
	}{
		{database.StateConnected, http.StatusOK, "ok"},
		{database.StateDisconnected, http.StatusServiceUnavailable, "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.state, func(t *testing.T) {
			h := NewHandler(fakeStore(tc.state))
			h.now = func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }
			r := gin.New()
			h.RegisterRoutes(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, tc.code, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, map[string]string{
				"status":    tc.status,
				"timestamp": "2026-10-19T08:00:00Z",
				"database":  tc.state,
			}, body)
		})
	}
}

func dial(t *testing.T, s *GRPCServer) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return healthpb.NewHealthClient(conn)
}

func status(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return res.GetStatus()
}

func TestGRPC_FollowsManager(t *testing.T) {
	db := dbtest.Open(t)
	m := database.NewManager(db, time.Second)

	s := NewGRPCServer()
	s.Bind(m)
	client := dial(t, s)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, ""))

	require.NoError(t, m.Connect(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, Service))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	require.Error(t, m.Connect(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, Service))
}
