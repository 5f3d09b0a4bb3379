// Package health serves the standard gRPC health protocol so orchestrators can
// probe the GraphQL service.
package health

import (
	"sync"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported for the GraphQL endpoint.
const ServiceName = "showgraph.GraphQL"

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// Server bundles the gRPC server with the health status it publishes.
type Server struct {
	*grpc.Server
	health *health.Server
}

// NewServer creates a gRPC server exposing health checking and reflection,
// instrumented with Prometheus interceptors. Both the overall status and
// ServiceName start as SERVING.
func NewServer() *Server {
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	srvMetrics := grpcServerMetrics

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(srvMetrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(srvMetrics.StreamServerInterceptor()),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	// Reflection lets grpcurl and grpc_health_probe discover the service
	reflection.Register(grpcServer)

	srvMetrics.InitializeMetrics(grpcServer)

	s := &Server{Server: grpcServer, health: healthServer}
	s.SetServing(true)
	return s
}

// SetServing flips the published status of both the server and ServiceName.
func (s *Server) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Shutdown marks every service NOT_SERVING and stops the server once in-flight
// checks complete.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}
