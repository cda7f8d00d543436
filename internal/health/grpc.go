package health

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"jobvibe/internal/database"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"gorm.io/gorm"
)

// Service is the name reported for the API in addition to the overall
// ("") status.
const Service = "jobvibe.api"

// GRPCServer serves grpc.health.v1 with reflection enabled. It starts
// NOT_SERVING and follows the store state once bound to a manager.
type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	log    *slog.Logger
}

func NewGRPCServer() *GRPCServer {
	s := &GRPCServer{
		server: grpc.NewServer(),
		health: health.NewServer(),
		log:    slog.Default().With("component", "grpc-health"),
	}
	healthpb.RegisterHealthServer(s.server, s.health)
	reflection.Register(s.server)
	s.SetServing(false)
	return s
}

func (s *GRPCServer) SetServing(ok bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(Service, status)
}

// Bind mirrors m's readiness transitions.
func (s *GRPCServer) Bind(m *database.Manager) {
	m.OnReconnect(func(context.Context, *gorm.DB) error {
		s.SetServing(true)
		return nil
	})
	m.OnDisconnect(func() { s.SetServing(false) })
	s.SetServing(m.IsReady())
}

func (s *GRPCServer) Serve(lis net.Listener) error {
	s.log.Info("grpc health listening", "addr", lis.Addr().String())
	return s.server.Serve(lis)
}

func (s *GRPCServer) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(lis)
}

// Stop marks everything NOT_SERVING so watchers see the shutdown, then
// drains in-flight calls.
func (s *GRPCServer) Stop() {
	s.health.Shutdown()
	s.server.GracefulStop()
}
