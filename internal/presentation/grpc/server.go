package grpc

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Server wraps the gRPC server with lead scoring handlers.
type Server struct {
	address    string
	grpcServer *grpc.Server
	handler    *LeadScoringHandler
	logger     *slog.Logger
}

// NewServer creates a new gRPC server for the lead scoring service. The
// health service reports SERVING only when a model bundle is loaded.
func NewServer(handler *LeadScoringHandler, address string, ready bool, logger *slog.Logger) *Server {
	grpcServer := grpc.NewServer()

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	healthServer.SetServingStatus("leadscore", servingStatus)

	RegisterLeadScoringServer(grpcServer, handler)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(grpcServer)
	}

	return &Server{
		grpcServer: grpcServer,
		handler:    handler,
		logger:     logger,
		address:    address,
	}
}

// Start begins listening and serving gRPC requests.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}

	s.logger.Info("gRPC server starting",
		slog.String("address", s.address),
	)

	return s.grpcServer.Serve(listener)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.logger.Info("gRPC server shutting down")
	s.grpcServer.GracefulStop()
}
